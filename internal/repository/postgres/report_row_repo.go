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
	"github.com/shreemathi-1/dsrfinal-sub001/internal/report"
)

type reportRowRepo struct {
	db *sqlx.DB
}

// NewReportRowRepo creates a PostgreSQL-backed ReportRowRepository. A single
// implementation serves all report tables; queries are assembled from the
// descriptor's column list. Table and column identifiers come from the static
// registry, never from request input.
func NewReportRowRepo(db *sqlx.DB) port.ReportRowRepository {
	return &reportRowRepo{db: db}
}

// baseColumns precede the metric columns on every report table.
var baseColumns = []string{
	"created_by", "report_date", "district", "police_station",
	"updated_by", "created_at", "updated_at",
}

func (r *reportRowRepo) Upsert(ctx context.Context, desc *report.Descriptor, row port.ReportRowInput) (map[string]interface{}, error) {
	now := time.Now().UTC()

	cols := append(append([]string{}, baseColumns...), desc.Columns()...)
	args := []interface{}{
		row.OfficerID, row.ReportDate, row.District, row.PoliceStation,
		row.UpdatedBy, now, now,
	}
	for _, c := range desc.Columns() {
		args = append(args, row.Values[c])
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	// Everything except the composite key and created_at is rewritten on
	// conflict: a second save for the same (officer, date) is a full
	// overwrite, so repeating a save is idempotent.
	updates := []string{
		"district = EXCLUDED.district",
		"police_station = EXCLUDED.police_station",
		"updated_by = EXCLUDED.updated_by",
		"updated_at = EXCLUDED.updated_at",
	}
	for _, c := range desc.Columns() {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s)
		 ON CONFLICT (created_by, report_date) DO UPDATE SET %s
		 RETURNING *`,
		desc.StorageName,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	persisted := map[string]interface{}{}
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reportRowRepo.Upsert %s: %w", desc.StorageName, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("reportRowRepo.Upsert %s: %w", desc.StorageName, err)
		}
		return nil, fmt.Errorf("reportRowRepo.Upsert %s: no row returned", desc.StorageName)
	}
	if err := rows.MapScan(persisted); err != nil {
		return nil, fmt.Errorf("reportRowRepo.Upsert %s scan: %w", desc.StorageName, err)
	}

	// NUMERIC columns scan as driver-specific types; normalize the metric
	// columns so callers always see float64.
	for _, c := range desc.Columns() {
		persisted[c] = report.Number(persisted[c])
	}
	return persisted, nil
}

func (r *reportRowRepo) Get(ctx context.Context, desc *report.Descriptor, officerID uuid.UUID, reportDate time.Time) (report.Row, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE created_by = $1 AND report_date = $2",
		strings.Join(desc.Columns(), ", "), desc.StorageName,
	)

	raw := map[string]interface{}{}
	err := r.db.QueryRowxContext(ctx, query, officerID, reportDate).MapScan(raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reportRowRepo.Get %s: %w", desc.StorageName, err)
	}

	row := make(report.Row, len(raw))
	for _, c := range desc.Columns() {
		row[c] = report.Number(raw[c])
	}
	return row, nil
}
