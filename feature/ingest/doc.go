// Package ingest inserts homes delivered by the message broker.
//
// Each message body is one home (see core/contracts home.json). A batch of deliveries is
// decoded, invalid messages are dropped with a warning, and the remaining homes are
// inserted with a single AddRange. A store failure fails the whole batch so the
// consumer can nack it.
package ingest
