package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/config"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/port"
)

// EvidenceUploadInput is the DTO for evidence upload requests.
type EvidenceUploadInput struct {
	ComplaintID uuid.UUID
	UploadedBy  uuid.UUID
	File        multipart.File
	Header      *multipart.FileHeader
}

// EvidenceItem pairs evidence metadata with a presigned download URL.
type EvidenceItem struct {
	domain.ComplaintEvidence
	DownloadURL string `json:"download_url"`
}

// EvidenceService defines the complaint evidence contract.
type EvidenceService interface {
	Upload(ctx context.Context, input EvidenceUploadInput) (*domain.ComplaintEvidence, error)
	ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]EvidenceItem, error)
}

type evidenceService struct {
	complaints port.ComplaintRepository
	evidence   port.EvidenceRepository
	storage    port.ObjectStorage
	cfg        *config.S3Config
}

// NewEvidenceService creates a new EvidenceService implementation.
func NewEvidenceService(
	complaints port.ComplaintRepository,
	evidence port.EvidenceRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) EvidenceService {
	return &evidenceService{
		complaints: complaints,
		evidence:   evidence,
		storage:    storage,
		cfg:        cfg,
	}
}

func (s *evidenceService) Upload(ctx context.Context, input EvidenceUploadInput) (*domain.ComplaintEvidence, error) {
	// Attachments only exist for live complaints.
	if _, err := s.complaints.GetByID(ctx, input.ComplaintID); err != nil {
		return nil, err
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte detection; the client-supplied content type is not trusted.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])

	fileType, ok := domain.AllowedEvidenceContentTypes[detectedType]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	evidenceID := uuid.New()
	s3Key := fmt.Sprintf("complaints/%s/evidence/%s/%s", input.ComplaintID, evidenceID, input.Header.Filename)

	meta := &domain.ComplaintEvidence{
		ID:          evidenceID,
		ComplaintID: input.ComplaintID,
		FileName:    input.Header.Filename,
		FileType:    fileType,
		FileSize:    input.Header.Size,
		S3Bucket:    s.cfg.Bucket,
		S3Key:       s3Key,
		ContentType: detectedType,
		UploadedBy:  input.UploadedBy,
	}

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: detectedType,
		Size:        input.Header.Size,
	}); err != nil {
		log.Printf("evidenceService.Upload: storage upload failed for complaint %s: %v", input.ComplaintID, err)
		return nil, domain.ErrUploadFailed
	}

	if err := s.evidence.Create(ctx, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

func (s *evidenceService) ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]EvidenceItem, error) {
	if _, err := s.complaints.GetByID(ctx, complaintID); err != nil {
		return nil, err
	}

	records, err := s.evidence.ListByComplaint(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	items := make([]EvidenceItem, 0, len(records))
	for _, rec := range records {
		url, err := s.storage.GetPresignedURL(ctx, rec.S3Bucket, rec.S3Key, s.cfg.PresignExpiry)
		if err != nil {
			log.Printf("evidenceService.ListByComplaint: presign failed for %s: %v", rec.S3Key, err)
			url = ""
		}
		items = append(items, EvidenceItem{ComplaintEvidence: rec, DownloadURL: url})
	}
	return items, nil
}
