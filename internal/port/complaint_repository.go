package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
)

// ComplaintRepository defines the contract for complaint persistence.
// List and GetByID exclude soft-deleted rows; uniqueness of s_no and
// acknowledgement_no is enforced among non-deleted rows only.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	List(ctx context.Context, filter domain.ComplaintFilter) ([]domain.Complaint, int, error)
	Update(ctx context.Context, complaint *domain.Complaint) error
	SoftDelete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// EvidenceRepository defines the contract for complaint evidence metadata.
type EvidenceRepository interface {
	Create(ctx context.Context, evidence *domain.ComplaintEvidence) error
	ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintEvidence, error)
}
