package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/report"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Save(ctx context.Context, actor *domain.User, reportID string, reportDate time.Time, doc report.Document) (map[string]interface{}, error) {
	args := m.Called(ctx, actor, reportID, reportDate, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockReportService) Load(ctx context.Context, reportID string, officerID uuid.UUID, reportDate time.Time) (report.Document, error) {
	args := m.Called(ctx, reportID, officerID, reportDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(report.Document), args.Error(1)
}

func (m *MockReportService) Types() []service.ReportTypeInfo {
	args := m.Called()
	return args.Get(0).([]service.ReportTypeInfo)
}
