package checks

import (
	"booking-api/feature/homes/repository"
)

// Auditor reports how faithfully the availability index mirrors the home store.
type Auditor interface {
	Audit() repository.AuditReport
}

// IndexReport is the result of an index audit.
type IndexReport struct {
	repository.AuditReport
	Status string `json:"status"` // "ok", "error"
}

// CheckIndex audits the availability index.
func CheckIndex(a Auditor) IndexReport {
	audit := a.Audit()
	status := "ok"
	if !audit.Consistent() {
		status = "error"
	}
	return IndexReport{AuditReport: audit, Status: status}
}
