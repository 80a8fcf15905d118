package checks

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"booking-api/core/database"

	"gorm.io/gorm"
)

// DatabaseReport is the result of a catalog schema check.
type DatabaseReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport describes one table compared with its model.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// CheckDatabaseIntegrity compares each table with the gorm model registered for it.
// Only columns named with a column: tag are checked, and types only when a type: tag
// is present.
func CheckDatabaseIntegrity(db *gorm.DB, tables map[string]any) (*DatabaseReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &DatabaseReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		tbl, err := checkTable(db, name, tables[name])
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
			report.Matched = false
			continue
		}
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[name] = tbl
	}

	return report, nil
}

func checkTable(db *gorm.DB, name string, model any) (TableReport, error) {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actualCols, err := database.GetTableColumns(db, name)
	if err != nil {
		return tbl, fmt.Errorf("failed to inspect table %s: %v", name, err)
	}
	if len(actualCols) == 0 {
		tbl.Status = "missing"
		return tbl, nil
	}

	actual := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = col
	}

	t := reflect.TypeOf(model)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		colName := gormTagValue(tag, "column")
		if colName == "" {
			continue
		}

		col, ok := actual[colName]
		if !ok {
			tbl.MissingColumns = append(tbl.MissingColumns, colName)
			tbl.Status = "error"
			continue
		}

		if expType := strings.ToLower(gormTagValue(tag, "type")); expType != "" && !strings.Contains(col.Type, expType) {
			tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
			tbl.Status = "error"
		}
	}

	return tbl, nil
}

// gormTagValue returns the value of key in a gorm struct tag ("column:id;size:256").
func gormTagValue(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(part, key+":"); ok {
			return v
		}
	}
	return ""
}
