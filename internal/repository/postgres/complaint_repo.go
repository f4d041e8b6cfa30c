package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/port"
)

type complaintRepo struct {
	db *sqlx.DB
}

// NewComplaintRepo creates a new PostgreSQL-backed ComplaintRepository.
func NewComplaintRepo(db *sqlx.DB) port.ComplaintRepository {
	return &complaintRepo{db: db}
}

// mapDuplicate translates a unique-violation error into the matching domain
// error. The partial unique indexes only cover non-deleted rows, so a
// soft-deleted complaint frees its numbers for reuse.
func mapDuplicate(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "complaints_s_no_unique"):
		return domain.ErrDuplicateSerialNo
	case strings.Contains(msg, "complaints_ack_no_unique"):
		return domain.ErrDuplicateAcknowledgement
	default:
		return nil
	}
}

func (r *complaintRepo) Create(ctx context.Context, c *domain.Complaint) error {
	c.ID = uuid.New()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `INSERT INTO complaints (id, s_no, acknowledgement_no, state, district,
		police_station, category, sub_category, status, incident_date, complaint_date,
		last_action_date, fraudulent_amount, lien_amount, complainant_name,
		complainant_address, complainant_mobile_no, complainant_email, suspect_name,
		suspect_mobile_no, suspect_bank_account, suspect_upi_id, action_taken_remarks,
		is_deleted, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.SNo, c.AcknowledgementNo, c.State, c.District, c.PoliceStation,
		c.Category, c.SubCategory, c.Status, c.IncidentDate, c.ComplaintDate,
		c.LastActionDate, c.FraudulentAmount, c.LienAmount, c.ComplainantName,
		c.ComplainantAddress, c.ComplainantMobileNo, c.ComplainantEmail,
		c.SuspectName, c.SuspectMobileNo, c.SuspectBankAccount, c.SuspectUPIID,
		c.ActionTakenRemarks, c.IsDeleted, c.CreatedBy, c.UpdatedBy,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if dup := mapDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("complaintRepo.Create: %w", err)
	}
	return nil
}

func (r *complaintRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	var c domain.Complaint
	err := r.db.GetContext(ctx, &c,
		"SELECT * FROM complaints WHERE id = $1 AND is_deleted = FALSE", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("complaintRepo.GetByID: %w", err)
	}
	return &c, nil
}

// sortColumns whitelists the sortable columns; anything else falls back to
// complaint_date.
var sortColumns = map[string]string{
	"complaint_date":    "complaint_date",
	"incident_date":     "incident_date",
	"last_action_date":  "last_action_date",
	"fraudulent_amount": "fraudulent_amount",
	"s_no":              "s_no",
	"created_at":        "created_at",
}

func buildComplaintWhere(f domain.ComplaintFilter) (string, []interface{}) {
	clause := "WHERE is_deleted = FALSE"
	var args []interface{}
	argN := 1

	if f.District != "" {
		clause += fmt.Sprintf(" AND district = $%d", argN)
		args = append(args, f.District)
		argN++
	}
	if f.PoliceStation != "" {
		clause += fmt.Sprintf(" AND police_station = $%d", argN)
		args = append(args, f.PoliceStation)
		argN++
	}
	if f.Category != "" {
		clause += fmt.Sprintf(" AND category = $%d", argN)
		args = append(args, f.Category)
		argN++
	}
	if f.Status != "" {
		clause += fmt.Sprintf(" AND status = $%d", argN)
		args = append(args, f.Status)
		argN++
	}
	if f.From != nil {
		clause += fmt.Sprintf(" AND complaint_date >= $%d", argN)
		args = append(args, *f.From)
		argN++
	}
	if f.To != nil {
		clause += fmt.Sprintf(" AND complaint_date <= $%d", argN)
		args = append(args, *f.To)
		argN++
	}
	return clause, args
}

func (r *complaintRepo) List(ctx context.Context, filter domain.ComplaintFilter) ([]domain.Complaint, int, error) {
	where, args := buildComplaintWhere(filter)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM complaints "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("complaintRepo.List count: %w", err)
	}

	sortCol, ok := sortColumns[filter.SortBy]
	if !ok {
		sortCol = "complaint_date"
	}
	dir := "ASC"
	if filter.SortDesc {
		dir = "DESC"
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf("SELECT * FROM complaints %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		where, sortCol, dir, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var complaints []domain.Complaint
	if err := r.db.SelectContext(ctx, &complaints, query, args...); err != nil {
		return nil, 0, fmt.Errorf("complaintRepo.List: %w", err)
	}
	return complaints, total, nil
}

func (r *complaintRepo) Update(ctx context.Context, c *domain.Complaint) error {
	c.UpdatedAt = time.Now().UTC()
	query := `UPDATE complaints SET state = $1, district = $2, police_station = $3,
		category = $4, sub_category = $5, status = $6, incident_date = $7,
		complaint_date = $8, last_action_date = $9, fraudulent_amount = $10,
		lien_amount = $11, complainant_name = $12, complainant_address = $13,
		complainant_mobile_no = $14, complainant_email = $15, suspect_name = $16,
		suspect_mobile_no = $17, suspect_bank_account = $18, suspect_upi_id = $19,
		action_taken_remarks = $20, updated_by = $21, updated_at = $22
		WHERE id = $23 AND is_deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query,
		c.State, c.District, c.PoliceStation, c.Category, c.SubCategory, c.Status,
		c.IncidentDate, c.ComplaintDate, c.LastActionDate, c.FraudulentAmount,
		c.LienAmount, c.ComplainantName, c.ComplainantAddress, c.ComplainantMobileNo,
		c.ComplainantEmail, c.SuspectName, c.SuspectMobileNo, c.SuspectBankAccount,
		c.SuspectUPIID, c.ActionTakenRemarks, c.UpdatedBy, c.UpdatedAt, c.ID)
	if err != nil {
		if dup := mapDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("complaintRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *complaintRepo) SoftDelete(ctx context.Context, id, deletedBy uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE complaints SET is_deleted = TRUE, updated_by = $1, updated_at = NOW()
		 WHERE id = $2 AND is_deleted = FALSE`,
		deletedBy, id)
	if err != nil {
		return fmt.Errorf("complaintRepo.SoftDelete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
