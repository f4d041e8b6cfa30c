package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user of the reporting system. Officers
// carry district and police station metadata that is snapshotted onto every
// report row they save.
type User struct {
	ID                   uuid.UUID  `db:"id" json:"id"`
	Email                string     `db:"email" json:"email"`
	PasswordHash         string     `db:"password_hash" json:"-"`
	FullName             string     `db:"full_name" json:"full_name"`
	Role                 UserRole   `db:"role" json:"role"`
	District             string     `db:"district" json:"district"`
	PoliceStation        string     `db:"police_station" json:"police_station"`
	IsActive             bool       `db:"is_active" json:"is_active"`
	PasswordResetTokenID *string    `db:"password_reset_token_id" json:"-"`
	LastLoginAt          *time.Time `db:"last_login_at" json:"last_login_at"`
	CreatedAt            time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updated_at"`
}

// Complaint is a single cyber-fraud complaint record (NCRP intake).
type Complaint struct {
	ID                   uuid.UUID       `db:"id" json:"id"`
	SNo                  string          `db:"s_no" json:"s_no"`
	AcknowledgementNo    string          `db:"acknowledgement_no" json:"acknowledgement_no"`
	State                string          `db:"state" json:"state"`
	District             string          `db:"district" json:"district"`
	PoliceStation        string          `db:"police_station" json:"police_station"`
	Category             string          `db:"category" json:"category"`
	SubCategory          string          `db:"sub_category" json:"sub_category"`
	Status               ComplaintStatus `db:"status" json:"status"`
	IncidentDate         *time.Time      `db:"incident_date" json:"incident_date"`
	ComplaintDate        *time.Time      `db:"complaint_date" json:"complaint_date"`
	LastActionDate       *time.Time      `db:"last_action_date" json:"last_action_date"`
	FraudulentAmount     float64         `db:"fraudulent_amount" json:"fraudulent_amount"`
	LienAmount           float64         `db:"lien_amount" json:"lien_amount"`
	ComplainantName      string          `db:"complainant_name" json:"complainant_name"`
	ComplainantAddress   string          `db:"complainant_address" json:"complainant_address"`
	ComplainantMobileNo  string          `db:"complainant_mobile_no" json:"complainant_mobile_no"`
	ComplainantEmail     string          `db:"complainant_email" json:"complainant_email"`
	SuspectName          string          `db:"suspect_name" json:"suspect_name"`
	SuspectMobileNo      string          `db:"suspect_mobile_no" json:"suspect_mobile_no"`
	SuspectBankAccount   string          `db:"suspect_bank_account" json:"suspect_bank_account"`
	SuspectUPIID         string          `db:"suspect_upi_id" json:"suspect_upi_id"`
	ActionTakenRemarks   string          `db:"action_taken_remarks" json:"action_taken_remarks"`
	IsDeleted            bool            `db:"is_deleted" json:"is_deleted"`
	CreatedBy            uuid.UUID       `db:"created_by" json:"created_by"`
	UpdatedBy            *uuid.UUID      `db:"updated_by" json:"updated_by"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at" json:"updated_at"`
}

// ComplaintEvidence stores metadata about an evidence file attached to a complaint.
type ComplaintEvidence struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	ComplaintID uuid.UUID        `db:"complaint_id" json:"complaint_id"`
	FileName    string           `db:"file_name" json:"file_name"`
	FileType    EvidenceFileType `db:"file_type" json:"file_type"`
	FileSize    int64            `db:"file_size" json:"file_size"`
	S3Bucket    string           `db:"s3_bucket" json:"s3_bucket"`
	S3Key       string           `db:"s3_key" json:"s3_key"`
	ContentType string           `db:"content_type" json:"content_type"`
	UploadedBy  uuid.UUID        `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}

// ComplaintFilter narrows complaint list queries. Zero values mean "no filter".
type ComplaintFilter struct {
	District      string
	PoliceStation string
	Category      string
	Status        ComplaintStatus
	From          *time.Time
	To            *time.Time
	SortBy        string
	SortDesc      bool
	Limit         int
	Offset        int
}
