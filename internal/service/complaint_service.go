package service

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/port"
)

var (
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// CreateComplaintInput is the DTO for registering a complaint.
type CreateComplaintInput struct {
	SNo                 string                 `json:"s_no" binding:"required"`
	AcknowledgementNo   string                 `json:"acknowledgement_no" binding:"required"`
	State               string                 `json:"state"`
	District            string                 `json:"district"`
	PoliceStation       string                 `json:"police_station"`
	Category            string                 `json:"category"`
	SubCategory         string                 `json:"sub_category"`
	Status              domain.ComplaintStatus `json:"status" binding:"required"`
	IncidentDate        *time.Time             `json:"incident_date"`
	ComplaintDate       *time.Time             `json:"complaint_date"`
	LastActionDate      *time.Time             `json:"last_action_date"`
	FraudulentAmount    float64                `json:"fraudulent_amount"`
	LienAmount          float64                `json:"lien_amount"`
	ComplainantName     string                 `json:"complainant_name" binding:"required"`
	ComplainantAddress  string                 `json:"complainant_address"`
	ComplainantMobileNo string                 `json:"complainant_mobile_no" binding:"required"`
	ComplainantEmail    string                 `json:"complainant_email"`
	SuspectName         string                 `json:"suspect_name"`
	SuspectMobileNo     string                 `json:"suspect_mobile_no"`
	SuspectBankAccount  string                 `json:"suspect_bank_account"`
	SuspectUPIID        string                 `json:"suspect_upi_id"`
	ActionTakenRemarks  string                 `json:"action_taken_remarks"`
}

// UpdateComplaintInput is the DTO for partially updating a complaint.
// Nil fields are left untouched.
type UpdateComplaintInput struct {
	State               *string                 `json:"state"`
	District            *string                 `json:"district"`
	PoliceStation       *string                 `json:"police_station"`
	Category            *string                 `json:"category"`
	SubCategory         *string                 `json:"sub_category"`
	Status              *domain.ComplaintStatus `json:"status"`
	IncidentDate        *time.Time              `json:"incident_date"`
	ComplaintDate       *time.Time              `json:"complaint_date"`
	LastActionDate      *time.Time              `json:"last_action_date"`
	FraudulentAmount    *float64                `json:"fraudulent_amount"`
	LienAmount          *float64                `json:"lien_amount"`
	ComplainantName     *string                 `json:"complainant_name"`
	ComplainantAddress  *string                 `json:"complainant_address"`
	ComplainantMobileNo *string                 `json:"complainant_mobile_no"`
	ComplainantEmail    *string                 `json:"complainant_email"`
	SuspectName         *string                 `json:"suspect_name"`
	SuspectMobileNo     *string                 `json:"suspect_mobile_no"`
	SuspectBankAccount  *string                 `json:"suspect_bank_account"`
	SuspectUPIID        *string                 `json:"suspect_upi_id"`
	ActionTakenRemarks  *string                 `json:"action_taken_remarks"`
}

// ComplaintService defines the complaint management contract.
type ComplaintService interface {
	Create(ctx context.Context, actorID uuid.UUID, input CreateComplaintInput) (*domain.Complaint, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	List(ctx context.Context, filter domain.ComplaintFilter) ([]domain.Complaint, int, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input UpdateComplaintInput) (*domain.Complaint, error)
	SoftDelete(ctx context.Context, actorID, id uuid.UUID) error
}

type complaintService struct {
	repo port.ComplaintRepository
}

// NewComplaintService creates a new ComplaintService implementation.
func NewComplaintService(repo port.ComplaintRepository) ComplaintService {
	return &complaintService{repo: repo}
}

func (s *complaintService) Create(ctx context.Context, actorID uuid.UUID, input CreateComplaintInput) (*domain.Complaint, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrOwnerIdentityRequired
	}

	c := &domain.Complaint{
		SNo:                 input.SNo,
		AcknowledgementNo:   input.AcknowledgementNo,
		State:               input.State,
		District:            input.District,
		PoliceStation:       input.PoliceStation,
		Category:            input.Category,
		SubCategory:         input.SubCategory,
		Status:              input.Status,
		IncidentDate:        input.IncidentDate,
		ComplaintDate:       input.ComplaintDate,
		LastActionDate:      input.LastActionDate,
		FraudulentAmount:    input.FraudulentAmount,
		LienAmount:          input.LienAmount,
		ComplainantName:     input.ComplainantName,
		ComplainantAddress:  input.ComplainantAddress,
		ComplainantMobileNo: input.ComplainantMobileNo,
		ComplainantEmail:    input.ComplainantEmail,
		SuspectName:         input.SuspectName,
		SuspectMobileNo:     input.SuspectMobileNo,
		SuspectBankAccount:  input.SuspectBankAccount,
		SuspectUPIID:        input.SuspectUPIID,
		ActionTakenRemarks:  input.ActionTakenRemarks,
		CreatedBy:           actorID,
	}

	if err := validateComplaint(c); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *complaintService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *complaintService) List(ctx context.Context, filter domain.ComplaintFilter) ([]domain.Complaint, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *complaintService) Update(ctx context.Context, actorID, id uuid.UUID, input UpdateComplaintInput) (*domain.Complaint, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyComplaintUpdate(c, input)
	c.UpdatedBy = &actorID

	if err := validateComplaint(c); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *complaintService) SoftDelete(ctx context.Context, actorID, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id, actorID)
}

func applyComplaintUpdate(c *domain.Complaint, in UpdateComplaintInput) {
	if in.State != nil {
		c.State = *in.State
	}
	if in.District != nil {
		c.District = *in.District
	}
	if in.PoliceStation != nil {
		c.PoliceStation = *in.PoliceStation
	}
	if in.Category != nil {
		c.Category = *in.Category
	}
	if in.SubCategory != nil {
		c.SubCategory = *in.SubCategory
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.IncidentDate != nil {
		c.IncidentDate = in.IncidentDate
	}
	if in.ComplaintDate != nil {
		c.ComplaintDate = in.ComplaintDate
	}
	if in.LastActionDate != nil {
		c.LastActionDate = in.LastActionDate
	}
	if in.FraudulentAmount != nil {
		c.FraudulentAmount = *in.FraudulentAmount
	}
	if in.LienAmount != nil {
		c.LienAmount = *in.LienAmount
	}
	if in.ComplainantName != nil {
		c.ComplainantName = *in.ComplainantName
	}
	if in.ComplainantAddress != nil {
		c.ComplainantAddress = *in.ComplainantAddress
	}
	if in.ComplainantMobileNo != nil {
		c.ComplainantMobileNo = *in.ComplainantMobileNo
	}
	if in.ComplainantEmail != nil {
		c.ComplainantEmail = *in.ComplainantEmail
	}
	if in.SuspectName != nil {
		c.SuspectName = *in.SuspectName
	}
	if in.SuspectMobileNo != nil {
		c.SuspectMobileNo = *in.SuspectMobileNo
	}
	if in.SuspectBankAccount != nil {
		c.SuspectBankAccount = *in.SuspectBankAccount
	}
	if in.SuspectUPIID != nil {
		c.SuspectUPIID = *in.SuspectUPIID
	}
	if in.ActionTakenRemarks != nil {
		c.ActionTakenRemarks = *in.ActionTakenRemarks
	}
}

// validateComplaint enforces the field-level contract: status enum membership,
// 10-digit mobile numbers, a well-formed complainant email and non-negative
// monetary amounts.
func validateComplaint(c *domain.Complaint) error {
	if !domain.ValidComplaintStatuses[c.Status] {
		return domain.NewValidationError("status", "must be a recognized complaint status")
	}
	if !mobileRe.MatchString(c.ComplainantMobileNo) {
		return domain.NewValidationError("complainant_mobile_no", "must be exactly 10 digits")
	}
	if c.SuspectMobileNo != "" && !mobileRe.MatchString(c.SuspectMobileNo) {
		return domain.NewValidationError("suspect_mobile_no", "must be exactly 10 digits")
	}
	if c.ComplainantEmail != "" && !emailRe.MatchString(c.ComplainantEmail) {
		return domain.NewValidationError("complainant_email", "must be a valid email address")
	}
	if c.FraudulentAmount < 0 {
		return domain.NewValidationError("fraudulent_amount", "must not be negative")
	}
	if c.LienAmount < 0 {
		return domain.NewValidationError("lien_amount", "must not be negative")
	}
	return nil
}
