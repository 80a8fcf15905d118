package integrity

import (
	"context"
	"testing"

	"booking-api/core/calendar"
	"booking-api/core/storage/mocks"
	"booking-api/feature/homes/models"
	"booking-api/feature/homes/repository"
	"booking-api/feature/integrity/checks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func seededRepository() *repository.InMemoryRepository {
	repo := repository.NewInMemoryRepository()
	start := calendar.MustParse("2025-09-01")
	repo.AddRange([]models.Home{
		{Name: "Home 1", AvailableSlots: calendar.Range(start, start.AddDays(4))},
		{Name: "Home 2", AvailableSlots: calendar.Range(start.AddDays(2), start.AddDays(6))},
	})
	return repo
}

func TestService_CheckIndex(t *testing.T) {
	svc := NewService(Options{Auditor: seededRepository()}, zap.NewNop())

	report, err := svc.CheckIndex()
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Status)
	assert.Equal(t, 2, report.Homes)
	assert.Equal(t, 10, report.Entries)
}

func TestService_NotConfigured(t *testing.T) {
	svc := NewService(Options{}, zap.NewNop())

	_, err := svc.CheckIndex()
	assert.ErrorIs(t, err, ErrNoIndex)

	_, err = svc.CheckDatabase()
	assert.ErrorIs(t, err, ErrNoDatabase)

	_, err = svc.CheckStorage(context.Background())
	assert.ErrorIs(t, err, ErrNoStorage)
}

func TestService_CheckAll(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
	client.On("ListObjects", mock.Anything, "catalog", mock.Anything).Return(mocks.Objects())

	svc := NewService(Options{
		Auditor: seededRepository(),
		Client:  client,
		Bucket:  "catalog",
		Prefix:  "homes/",
	}, zap.NewNop())

	report := svc.CheckAll(context.Background())

	idx, ok := report["index"].(checks.IndexReport)
	require.True(t, ok)
	assert.Equal(t, "ok", idx.Status)

	st, ok := report["storage"].(*checks.StorageReport)
	require.True(t, ok)
	assert.Equal(t, "empty", st.Status)

	db, ok := report["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "error", db["status"])
}

func TestService_CheckDatabase(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `catalog_home_dates`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}))
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `catalog_homes`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}))

	svc := NewService(Options{DB: db}, zap.NewNop())
	report, err := svc.CheckDatabase()
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "missing", report.Tables["catalog_homes"].Status)
}
