package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/config"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/port"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/service"
	"github.com/shreemathi-1/dsrfinal-sub001/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "ap-south-1",
		Bucket:        "test-evidence-bucket",
		MaxFileSizeMB: 10,
		PresignExpiry: 3600,
	}
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["file"][0].Open()
	return file, form.File["file"][0]
}

// pdfContent returns minimal valid PDF bytes.
func pdfContent() []byte {
	return []byte("%PDF-1.4 test content that is at least a few bytes long for detection purposes")
}

func liveComplaint(id uuid.UUID) *domain.Complaint {
	return &domain.Complaint{
		ID:                  id,
		SNo:                 "2025/0042",
		AcknowledgementNo:   "NCRP20250042",
		Status:              domain.ComplaintStatusReceived,
		ComplainantMobileNo: "9876543210",
	}
}

func TestEvidenceService_Upload_PDF(t *testing.T) {
	complaints := new(mocks.MockComplaintRepo)
	evidence := new(mocks.MockEvidenceRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(complaints, evidence, storage, &cfg)

	complaintID := uuid.New()
	userID := uuid.New()
	complaints.On("GetByID", mock.Anything, complaintID).Return(liveComplaint(complaintID), nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://test-evidence-bucket.s3.amazonaws.com/x", ETag: "abc"}, nil)
	evidence.On("Create", mock.Anything, mock.AnythingOfType("*domain.ComplaintEvidence")).Return(nil)

	file, header := createMultipartFile("screenshot.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	meta, err := svc.Upload(context.Background(), service.EvidenceUploadInput{
		ComplaintID: complaintID,
		UploadedBy:  userID,
		File:        file,
		Header:      header,
	})

	assert.NoError(t, err)
	assert.Equal(t, complaintID, meta.ComplaintID)
	assert.Equal(t, "screenshot.pdf", meta.FileName)
	assert.Equal(t, "application/pdf", meta.ContentType)
	assert.Equal(t, "test-evidence-bucket", meta.S3Bucket)
	assert.Contains(t, meta.S3Key, complaintID.String())
	storage.AssertExpectations(t)
	evidence.AssertExpectations(t)
}

func TestEvidenceService_Upload_RejectsUnsupportedType(t *testing.T) {
	complaints := new(mocks.MockComplaintRepo)
	evidence := new(mocks.MockEvidenceRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(complaints, evidence, storage, &cfg)

	complaintID := uuid.New()
	complaints.On("GetByID", mock.Anything, complaintID).Return(liveComplaint(complaintID), nil)

	// Declared as PDF but the bytes are plain text.
	file, header := createMultipartFile("evil.pdf", []byte("just some plain text, no magic bytes"), "application/pdf")
	defer file.Close()

	_, err := svc.Upload(context.Background(), service.EvidenceUploadInput{
		ComplaintID: complaintID,
		UploadedBy:  uuid.New(),
		File:        file,
		Header:      header,
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestEvidenceService_Upload_ComplaintMustExist(t *testing.T) {
	complaints := new(mocks.MockComplaintRepo)
	cfg := testS3Config()
	svc := service.NewEvidenceService(complaints, new(mocks.MockEvidenceRepo), new(mocks.MockObjectStorage), &cfg)

	complaintID := uuid.New()
	complaints.On("GetByID", mock.Anything, complaintID).Return(nil, domain.ErrNotFound)

	file, header := createMultipartFile("a.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	_, err := svc.Upload(context.Background(), service.EvidenceUploadInput{
		ComplaintID: complaintID,
		UploadedBy:  uuid.New(),
		File:        file,
		Header:      header,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEvidenceService_ListByComplaint_PresignsEachItem(t *testing.T) {
	complaints := new(mocks.MockComplaintRepo)
	evidence := new(mocks.MockEvidenceRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewEvidenceService(complaints, evidence, storage, &cfg)

	complaintID := uuid.New()
	complaints.On("GetByID", mock.Anything, complaintID).Return(liveComplaint(complaintID), nil)

	records := []domain.ComplaintEvidence{
		{ID: uuid.New(), ComplaintID: complaintID, S3Bucket: "test-evidence-bucket", S3Key: "complaints/a/evidence/1/a.pdf"},
		{ID: uuid.New(), ComplaintID: complaintID, S3Bucket: "test-evidence-bucket", S3Key: "complaints/a/evidence/2/b.png"},
	}
	evidence.On("ListByComplaint", mock.Anything, complaintID).Return(records, nil)
	storage.On("GetPresignedURL", mock.Anything, "test-evidence-bucket", records[0].S3Key, int64(3600)).
		Return("https://signed/a.pdf", nil)
	storage.On("GetPresignedURL", mock.Anything, "test-evidence-bucket", records[1].S3Key, int64(3600)).
		Return("https://signed/b.png", nil)

	items, err := svc.ListByComplaint(context.Background(), complaintID)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "https://signed/a.pdf", items[0].DownloadURL)
	assert.Equal(t, "https://signed/b.png", items[1].DownloadURL)
}
