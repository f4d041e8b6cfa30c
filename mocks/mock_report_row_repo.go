package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/port"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/report"
)

// MockReportRowRepo is a mock implementation of port.ReportRowRepository.
type MockReportRowRepo struct {
	mock.Mock
}

func (m *MockReportRowRepo) Upsert(ctx context.Context, desc *report.Descriptor, row port.ReportRowInput) (map[string]interface{}, error) {
	args := m.Called(ctx, desc, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockReportRowRepo) Get(ctx context.Context, desc *report.Descriptor, officerID uuid.UUID, reportDate time.Time) (report.Row, error) {
	args := m.Called(ctx, desc, officerID, reportDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(report.Row), args.Error(1)
}
