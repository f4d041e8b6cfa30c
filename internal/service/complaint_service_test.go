package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/service"
	"github.com/shreemathi-1/dsrfinal-sub001/mocks"
)

func validCreateInput() service.CreateComplaintInput {
	return service.CreateComplaintInput{
		SNo:                 "2025/0042",
		AcknowledgementNo:   "NCRP20250042",
		State:               "Tamil Nadu",
		District:            "Chennai",
		Category:            "financial",
		Status:              domain.ComplaintStatusReceived,
		FraudulentAmount:    25000,
		ComplainantName:     "R Kumar",
		ComplainantMobileNo: "9876543210",
	}
}

func TestComplaintService_Create_Valid(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	actorID := uuid.New()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Create(context.Background(), actorID, validCreateInput())

	assert.NoError(t, err)
	assert.Equal(t, "2025/0042", c.SNo)
	assert.Equal(t, actorID, c.CreatedBy)
	assert.False(t, c.IsDeleted)
	repo.AssertExpectations(t)
}

func TestComplaintService_Create_RequiresActor(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	_, err := svc.Create(context.Background(), uuid.Nil, validCreateInput())

	assert.ErrorIs(t, err, domain.ErrOwnerIdentityRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestComplaintService_Create_InvalidMobile(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	for _, bad := range []string{"12345", "98765432101", "98765abc10", ""} {
		input := validCreateInput()
		input.ComplainantMobileNo = bad

		_, err := svc.Create(context.Background(), uuid.New(), input)

		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr, "mobile %q should be rejected", bad)
		assert.Equal(t, "complainant_mobile_no", vErr.Field)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestComplaintService_Create_InvalidStatus(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	input := validCreateInput()
	input.Status = "Archived"

	_, err := svc.Create(context.Background(), uuid.New(), input)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "status", vErr.Field)
}

func TestComplaintService_Create_InvalidEmail(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	input := validCreateInput()
	input.ComplainantEmail = "not-an-email"

	_, err := svc.Create(context.Background(), uuid.New(), input)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "complainant_email", vErr.Field)
}

func TestComplaintService_Create_NegativeAmount(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	input := validCreateInput()
	input.FraudulentAmount = -1

	_, err := svc.Create(context.Background(), uuid.New(), input)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "fraudulent_amount", vErr.Field)
}

func TestComplaintService_Create_DuplicateAcknowledgement(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateAcknowledgement)

	_, err := svc.Create(context.Background(), uuid.New(), validCreateInput())

	assert.ErrorIs(t, err, domain.ErrDuplicateAcknowledgement)
}

func TestComplaintService_Update_MergesAndRevalidates(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	id := uuid.New()
	actorID := uuid.New()
	existing := &domain.Complaint{
		ID:                  id,
		SNo:                 "2025/0042",
		AcknowledgementNo:   "NCRP20250042",
		Status:              domain.ComplaintStatusReceived,
		ComplainantName:     "R Kumar",
		ComplainantMobileNo: "9876543210",
		CreatedBy:           uuid.New(),
	}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newStatus := domain.ComplaintStatusFIRRegistered
	remarks := "FIR 118/2025 registered at CCB"
	c, err := svc.Update(context.Background(), actorID, id, service.UpdateComplaintInput{
		Status:             &newStatus,
		ActionTakenRemarks: &remarks,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ComplaintStatusFIRRegistered, c.Status)
	assert.Equal(t, remarks, c.ActionTakenRemarks)
	assert.Equal(t, "9876543210", c.ComplainantMobileNo)
	assert.Equal(t, &actorID, c.UpdatedBy)
	repo.AssertExpectations(t)
}

func TestComplaintService_Update_RejectsInvalidMerge(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	id := uuid.New()
	existing := &domain.Complaint{
		ID:                  id,
		Status:              domain.ComplaintStatusReceived,
		ComplainantMobileNo: "9876543210",
	}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)

	badMobile := "12345"
	_, err := svc.Update(context.Background(), uuid.New(), id, service.UpdateComplaintInput{
		ComplainantMobileNo: &badMobile,
	})

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestComplaintService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), uuid.New(), id, service.UpdateComplaintInput{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComplaintService_SoftDelete(t *testing.T) {
	repo := new(mocks.MockComplaintRepo)
	svc := service.NewComplaintService(repo)

	id := uuid.New()
	actorID := uuid.New()
	repo.On("SoftDelete", mock.Anything, id, actorID).Return(nil)

	err := svc.SoftDelete(context.Background(), actorID, id)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
