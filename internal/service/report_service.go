package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/port"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/report"
)

// ReportTypeInfo describes one report type for listing endpoints.
type ReportTypeInfo struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Fields int    `json:"fields"`
}

// ReportService coordinates saving and loading of DSR report rows.
type ReportService interface {
	// Save persists the document for (reportID, actor, reportDate); exactly
	// one row exists for that triple afterwards. District and police station
	// are snapshotted from the actor's profile at write time.
	Save(ctx context.Context, actor *domain.User, reportID string, reportDate time.Time, doc report.Document) (map[string]interface{}, error)
	// Load returns the document for (reportID, officerID, reportDate). An
	// unsaved report is not an error: the canonical empty document comes back.
	Load(ctx context.Context, reportID string, officerID uuid.UUID, reportDate time.Time) (report.Document, error)
	// Types lists the registered report types.
	Types() []ReportTypeInfo
}

type reportService struct {
	rows port.ReportRowRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(rows port.ReportRowRepository) ReportService {
	return &reportService{rows: rows}
}

func (s *reportService) Save(ctx context.Context, actor *domain.User, reportID string, reportDate time.Time, doc report.Document) (map[string]interface{}, error) {
	desc, err := report.Resolve(reportID)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.ID == uuid.Nil {
		return nil, domain.ErrOwnerIdentityRequired
	}

	row := port.ReportRowInput{
		OfficerID:     actor.ID,
		ReportDate:    reportDate,
		District:      actor.District,
		PoliceStation: actor.PoliceStation,
		UpdatedBy:     actor.ID,
		Values:        report.ToStorage(desc, doc),
	}
	return s.rows.Upsert(ctx, desc, row)
}

func (s *reportService) Load(ctx context.Context, reportID string, officerID uuid.UUID, reportDate time.Time) (report.Document, error) {
	desc, err := report.Resolve(reportID)
	if err != nil {
		return nil, err
	}
	if officerID == uuid.Nil {
		return nil, domain.ErrOwnerIdentityRequired
	}

	row, err := s.rows.Get(ctx, desc, officerID, reportDate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return report.EmptyDocument(desc), nil
		}
		return nil, err
	}
	return report.ToUI(desc, row), nil
}

func (s *reportService) Types() []ReportTypeInfo {
	all := report.All()
	infos := make([]ReportTypeInfo, len(all))
	for i, d := range all {
		infos[i] = ReportTypeInfo{ID: d.ID, Title: d.Title, Fields: len(d.Fields)}
	}
	return infos
}
