package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
)

// MockEvidenceRepo is a mock implementation of port.EvidenceRepository.
type MockEvidenceRepo struct {
	mock.Mock
}

func (m *MockEvidenceRepo) Create(ctx context.Context, evidence *domain.ComplaintEvidence) error {
	args := m.Called(ctx, evidence)
	return args.Error(0)
}

func (m *MockEvidenceRepo) ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintEvidence, error) {
	args := m.Called(ctx, complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ComplaintEvidence), args.Error(1)
}
