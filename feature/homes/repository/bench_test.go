package repository_test

import (
	"fmt"
	"testing"

	"booking-api/core/calendar"
	"booking-api/feature/homes/models"
	"booking-api/feature/homes/repository"
)

func seed(b *testing.B, totalHomes, days int) (*repository.InMemoryRepository, calendar.Date, calendar.Date) {
	b.Helper()
	start := calendar.MustParse("2025-09-01")
	end := start.AddDays(days - 1)

	homes := make([]models.Home, totalHomes)
	for i := range homes {
		homes[i] = models.Home{Name: fmt.Sprintf("Home %d", i+1), AvailableSlots: calendar.Range(start, end)}
	}
	repo := repository.NewInMemoryRepository()
	repo.AddRange(homes)
	return repo, start, end
}

func BenchmarkQuery_FullRange(b *testing.B) {
	for _, n := range []int{10000, 100000} {
		b.Run(fmt.Sprintf("homes=%d", n), func(b *testing.B) {
			repo, start, end := seed(b, n, 30)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				homes, err := repo.Query(start, end)
				if err != nil || len(homes) != n {
					b.Fatalf("got %d homes, err %v", len(homes), err)
				}
			}
		})
	}
}

func BenchmarkQuery_NoOverlap(b *testing.B) {
	repo, _, end := seed(b, 100000, 30)
	after := end.AddDays(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.Query(after, after.AddDays(5)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAddRange(b *testing.B) {
	start := calendar.MustParse("2025-09-01")
	homes := make([]models.Home, 10000)
	for i := range homes {
		homes[i] = models.Home{Name: fmt.Sprintf("Home %d", i+1), AvailableSlots: calendar.Range(start, start.AddDays(29))}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		repo := repository.NewInMemoryRepository()
		repo.AddRange(homes)
	}
}
