package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/report"
)

// ReportRowInput carries one report row ready for persistence: the composite
// key, the location snapshot taken from the saving officer's profile, and the
// storage-shaped metric values.
type ReportRowInput struct {
	OfficerID     uuid.UUID
	ReportDate    time.Time
	District      string
	PoliceStation string
	UpdatedBy     uuid.UUID
	Values        report.Row
}

// ReportRowRepository persists report rows across the per-report tables.
// At most one row exists per (officer, report date) within a table; Upsert
// inserts or overwrites that row atomically.
type ReportRowRepository interface {
	Upsert(ctx context.Context, desc *report.Descriptor, row ReportRowInput) (map[string]interface{}, error)
	Get(ctx context.Context, desc *report.Descriptor, officerID uuid.UUID, reportDate time.Time) (report.Row, error)
}
