package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/port"
)

type evidenceRepo struct {
	db *sqlx.DB
}

// NewEvidenceRepo creates a new PostgreSQL-backed EvidenceRepository.
func NewEvidenceRepo(db *sqlx.DB) port.EvidenceRepository {
	return &evidenceRepo{db: db}
}

func (r *evidenceRepo) Create(ctx context.Context, evidence *domain.ComplaintEvidence) error {
	evidence.ID = uuid.New()
	evidence.CreatedAt = time.Now().UTC()

	query := `INSERT INTO complaint_evidence (id, complaint_id, file_name, file_type,
		file_size, s3_bucket, s3_key, content_type, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		evidence.ID, evidence.ComplaintID, evidence.FileName, evidence.FileType,
		evidence.FileSize, evidence.S3Bucket, evidence.S3Key, evidence.ContentType,
		evidence.UploadedBy, evidence.CreatedAt)
	if err != nil {
		return fmt.Errorf("evidenceRepo.Create: %w", err)
	}
	return nil
}

func (r *evidenceRepo) ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintEvidence, error) {
	var evidence []domain.ComplaintEvidence
	err := r.db.SelectContext(ctx, &evidence,
		"SELECT * FROM complaint_evidence WHERE complaint_id = $1 ORDER BY created_at DESC",
		complaintID)
	if err != nil {
		return nil, fmt.Errorf("evidenceRepo.ListByComplaint: %w", err)
	}
	return evidence, nil
}
