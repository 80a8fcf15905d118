package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE catalog_test (id INTEGER PRIMARY KEY, name TEXT NOT NULL, note TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "catalog_test")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	byField := make(map[string]ColumnInfo)
	for _, col := range columns {
		byField[col.Field] = col
	}

	assert.Equal(t, "integer", byField["id"].Type)
	assert.Equal(t, "PRI", byField["id"].Key)
	assert.Equal(t, "text", byField["name"].Type)
	assert.Equal(t, "NO", byField["name"].Null)
	assert.Equal(t, "YES", byField["note"].Null)

	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "BIGINT UNSIGNED", "NO", "PRI", nil, "auto_increment").
		AddRow("Name", "VARCHAR(256)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `catalog_homes`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "catalog_homes")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "bigint unsigned", columns[0].Type)
	assert.Equal(t, "varchar(256)", columns[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
