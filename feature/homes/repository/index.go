package repository

import (
	"sync"

	"booking-api/core/calendar"
	"booking-api/core/utils"
)

// bucket is the set of home ids available on one date.
type bucket struct {
	mu  sync.RWMutex
	ids map[int64]struct{}
}

func newBucket() *bucket {
	return &bucket{ids: make(map[int64]struct{})}
}

func (b *bucket) add(ids ...int64) {
	b.mu.Lock()
	for _, id := range ids {
		b.ids[id] = struct{}{}
	}
	b.mu.Unlock()
}

func (b *bucket) contains(id int64) bool {
	b.mu.RLock()
	_, ok := b.ids[id]
	b.mu.RUnlock()
	return ok
}

// snapshot copies the bucket into a fresh set.
func (b *bucket) snapshot() map[int64]struct{} {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[int64]struct{}, len(b.ids))
	for id := range b.ids {
		out[id] = struct{}{}
	}
	return out
}

// retain removes from set every id not present in the bucket.
func (b *bucket) retain(set map[int64]struct{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id := range set {
		if _, ok := b.ids[id]; !ok {
			delete(set, id)
		}
	}
}

// dateIndex maps a date to the bucket of homes available on it.
// Buckets are created on first use and never removed except by reset.
type dateIndex struct {
	buckets utils.CMap[calendar.Date, *bucket]
}

func (x *dateIndex) bucketFor(d calendar.Date) *bucket {
	if b, ok := x.buckets.Load(d); ok {
		return b
	}
	b, _ := x.buckets.LoadOrStore(d, newBucket())
	return b
}

// add indexes one home id under each of its dates.
func (x *dateIndex) add(id int64, dates []calendar.Date) {
	for _, d := range dates {
		x.bucketFor(d).add(id)
	}
}

// addGrouped indexes many ids at once, taking each bucket lock a single time.
func (x *dateIndex) addGrouped(byDate map[calendar.Date][]int64) {
	for d, ids := range byDate {
		x.bucketFor(d).add(ids...)
	}
}

// intersect returns the ids present in every bucket of [start, end].
// It stops as soon as a bucket is missing or the working set runs empty.
func (x *dateIndex) intersect(start, end calendar.Date) map[int64]struct{} {
	dates := calendar.Range(start, end)
	if len(dates) == 0 {
		return nil
	}

	first, ok := x.buckets.Load(dates[0])
	if !ok {
		return nil
	}
	working := first.snapshot()
	if len(working) == 0 {
		return nil
	}

	for _, d := range dates[1:] {
		b, ok := x.buckets.Load(d)
		if !ok {
			return nil
		}
		b.retain(working)
		if len(working) == 0 {
			return nil
		}
	}
	return working
}

func (x *dateIndex) reset() {
	x.buckets.Clear()
}
