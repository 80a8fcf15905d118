package catalog

import (
	"time"

	"booking-api/core/calendar"
	"booking-api/feature/homes/models"
)

// CatalogHome is a row of the catalog_homes table.
type CatalogHome struct {
	ID    uint              `gorm:"primaryKey;column:id"`
	Name  string            `gorm:"column:name;size:256;not null"`
	Dates []CatalogHomeDate `gorm:"foreignKey:HomeID"`
}

// TableName overrides the table name.
func (CatalogHome) TableName() string {
	return "catalog_homes"
}

// CatalogHomeDate is a row of the catalog_home_dates table, one per available day.
type CatalogHomeDate struct {
	ID     uint      `gorm:"primaryKey;column:id"`
	HomeID uint      `gorm:"column:home_id;index;not null"`
	Date   time.Time `gorm:"column:date;type:date;not null"`
}

// TableName overrides the table name.
func (CatalogHomeDate) TableName() string {
	return "catalog_home_dates"
}

// ToInput converts the row into an insert payload.
func (h CatalogHome) ToInput() models.HomeInput {
	slots := make([]calendar.Date, 0, len(h.Dates))
	for _, d := range h.Dates {
		slots = append(slots, calendar.FromTime(d.Date))
	}
	return models.HomeInput{Name: h.Name, AvailableSlots: slots}
}

// Tables lists the catalog models with their table names.
func Tables() map[string]any {
	return map[string]any{
		CatalogHome{}.TableName():     CatalogHome{},
		CatalogHomeDate{}.TableName(): CatalogHomeDate{},
	}
}
