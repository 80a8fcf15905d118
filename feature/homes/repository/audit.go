package repository

import (
	"fmt"
	"slices"

	"booking-api/core/calendar"
)

// AuditReport describes how faithfully the availability index mirrors the store.
type AuditReport struct {
	Homes   int `json:"homes"`
	Buckets int `json:"buckets"`
	Entries int `json:"entries"`
	// Missing lists home dates that have no entry in the index.
	Missing []string `json:"missing"`
	// Orphaned lists index entries whose home is unknown or not available on that date.
	Orphaned []string `json:"orphaned"`
}

// Consistent reports whether the audit found no divergence.
func (a AuditReport) Consistent() bool {
	return len(a.Missing) == 0 && len(a.Orphaned) == 0
}

// Audit walks the store and the index and reports divergences between them.
// Homes inserted while the audit runs may be reported as missing.
func (r *InMemoryRepository) Audit() AuditReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := AuditReport{
		Homes:    len(r.homes),
		Missing:  []string{},
		Orphaned: []string{},
	}

	for id, h := range r.homes {
		for _, d := range h.AvailableSlots {
			b, ok := r.index.buckets.Load(d)
			if !ok || !b.contains(id) {
				report.Missing = append(report.Missing, fmt.Sprintf("home %d: %s", id, d))
			}
		}
	}

	r.index.buckets.Range(func(d calendar.Date, b *bucket) bool {
		report.Buckets++
		for id := range b.snapshot() {
			report.Entries++
			h, ok := r.homes[id]
			if !ok {
				report.Orphaned = append(report.Orphaned, fmt.Sprintf("%s: unknown home %d", d, id))
				continue
			}
			if _, found := slices.BinarySearch(h.AvailableSlots, d); !found {
				report.Orphaned = append(report.Orphaned, fmt.Sprintf("%s: home %d not available", d, id))
			}
		}
		return true
	})

	slices.Sort(report.Missing)
	slices.Sort(report.Orphaned)
	return report
}
