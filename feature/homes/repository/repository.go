package repository

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"booking-api/core/calendar"
	"booking-api/feature/homes/models"
)

// ErrIndexDivergence is returned when the availability index references a home
// that the store cannot resolve.
var ErrIndexDivergence = errors.New("availability index references an unknown home")

// InMemoryRepository is the home store together with its availability index.
// It is safe for concurrent use.
type InMemoryRepository struct {
	nextID atomic.Int64

	mu    sync.RWMutex
	homes map[int64]models.Home

	index dateIndex
}

// NewInMemoryRepository creates an empty repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		homes: make(map[int64]models.Home),
	}
}

// Add assigns the next identity to home, stores it and indexes its dates.
func (r *InMemoryRepository) Add(home models.Home) models.Home {
	home.ID = r.nextID.Add(1)
	home.AvailableSlots = calendar.Normalize(home.AvailableSlots)

	r.mu.Lock()
	r.homes[home.ID] = home
	r.mu.Unlock()

	r.index.add(home.ID, home.AvailableSlots)
	return home
}

// AddRange stores homes in order, assigning each a distinct identity from one
// contiguous block. Index updates are grouped per date.
func (r *InMemoryRepository) AddRange(homes []models.Home) []models.Home {
	if len(homes) == 0 {
		return []models.Home{}
	}

	last := r.nextID.Add(int64(len(homes)))
	first := last - int64(len(homes)) + 1

	stored := make([]models.Home, len(homes))
	byDate := make(map[calendar.Date][]int64)
	for i, h := range homes {
		h.ID = first + int64(i)
		h.AvailableSlots = calendar.Normalize(h.AvailableSlots)
		stored[i] = h
		for _, d := range h.AvailableSlots {
			byDate[d] = append(byDate[d], h.ID)
		}
	}

	r.mu.Lock()
	for _, h := range stored {
		r.homes[h.ID] = h
	}
	r.mu.Unlock()

	r.index.addGrouped(byDate)
	return stored
}

// Get resolves a home by identity.
func (r *InMemoryRepository) Get(id int64) (models.Home, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.homes[id]
	return h, ok
}

// Len returns the number of stored homes.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.homes)
}

// Query returns the homes available on every day of [start, end], ordered by id.
// The result is empty, never nil, when no home matches.
func (r *InMemoryRepository) Query(start, end calendar.Date) ([]models.Home, error) {
	matched := r.index.intersect(start, end)
	if len(matched) == 0 {
		return []models.Home{}, nil
	}

	ids := make([]int64, 0, len(matched))
	for id := range matched {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Home, 0, len(ids))
	for _, id := range ids {
		h, ok := r.homes[id]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrIndexDivergence, id)
		}
		result = append(result, h)
	}
	return result, nil
}

// Clear removes every home and bucket. Identities are not reused afterwards.
// Test and benchmark support only.
func (r *InMemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.homes = make(map[int64]models.Home)
	r.index.reset()
}
