package domain

// UserRole defines the role hierarchy of the reporting system.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleDSRAdmin UserRole = "dsr-admin"
	RoleOfficer  UserRole = "officer"
)

// ValidUserRoles is the set of roles accepted on create/update.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:    true,
	RoleDSRAdmin: true,
	RoleOfficer:  true,
}

// ComplaintStatus represents the lifecycle stage of a cyber-fraud complaint.
type ComplaintStatus string

const (
	ComplaintStatusReceived      ComplaintStatus = "Received"
	ComplaintStatusUnderProcess  ComplaintStatus = "Under Process"
	ComplaintStatusFIRRegistered ComplaintStatus = "FIR Registered"
	ComplaintStatusCSRIssued     ComplaintStatus = "CSR Issued"
	ComplaintStatusWithdrawal    ComplaintStatus = "Withdrawal"
	ComplaintStatusRejected      ComplaintStatus = "Rejected"
	ComplaintStatusClosed        ComplaintStatus = "Closed"
	ComplaintStatusReopened      ComplaintStatus = "Reopened"
)

// ValidComplaintStatuses is the set of statuses accepted on create/update.
var ValidComplaintStatuses = map[ComplaintStatus]bool{
	ComplaintStatusReceived:      true,
	ComplaintStatusUnderProcess:  true,
	ComplaintStatusFIRRegistered: true,
	ComplaintStatusCSRIssued:     true,
	ComplaintStatusWithdrawal:    true,
	ComplaintStatusRejected:      true,
	ComplaintStatusClosed:        true,
	ComplaintStatusReopened:      true,
}

// EvidenceFileType represents the allowed evidence attachment types.
type EvidenceFileType string

const (
	EvidenceTypePDF EvidenceFileType = "pdf"
	EvidenceTypeJPG EvidenceFileType = "jpg"
	EvidenceTypePNG EvidenceFileType = "png"
)

// AllowedEvidenceContentTypes maps MIME content types to EvidenceFileType.
var AllowedEvidenceContentTypes = map[string]EvidenceFileType{
	"application/pdf": EvidenceTypePDF,
	"image/jpeg":      EvidenceTypeJPG,
	"image/png":       EvidenceTypePNG,
}
