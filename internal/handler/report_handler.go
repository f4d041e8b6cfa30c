package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/export"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/report"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/service"
)

const reportDateLayout = "2006-01-02"

// SaveReportInput is the DTO for saving a daily report.
type SaveReportInput struct {
	ReportDate string          `json:"report_date" binding:"required"`
	Data       report.Document `json:"data" binding:"required"`
}

// ReportHandler handles daily report endpoints.
type ReportHandler struct {
	reportService service.ReportService
	userService   service.UserService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, userService service.UserService) *ReportHandler {
	return &ReportHandler{reportService: reportService, userService: userService}
}

// Types handles GET /api/v1/reports
func (h *ReportHandler) Types(c *gin.Context) {
	RespondOK(c, h.reportService.Types())
}

// Save handles PUT /api/v1/reports/:reportId
func (h *ReportHandler) Save(c *gin.Context) {
	currentUserID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input SaveReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	reportDate, err := time.Parse(reportDateLayout, input.ReportDate)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "report_date must be in YYYY-MM-DD format")
		return
	}

	actor, err := h.userService.GetByID(c.Request.Context(), currentUserID)
	if err != nil {
		HandleError(c, err)
		return
	}

	row, err := h.reportService.Save(c.Request.Context(), actor, c.Param("reportId"), reportDate, input.Data)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, row)
}

// Load handles GET /api/v1/reports/:reportId?date=YYYY-MM-DD&officer_id=...
func (h *ReportHandler) Load(c *gin.Context) {
	officerID, reportDate, ok := h.resolveOwnerAndDate(c)
	if !ok {
		return
	}

	doc, err := h.reportService.Load(c.Request.Context(), c.Param("reportId"), officerID, reportDate)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Export handles GET /api/v1/reports/export?date=YYYY-MM-DD&officer_id=...
// It streams an xlsx workbook with one sheet per report type.
func (h *ReportHandler) Export(c *gin.Context) {
	officerID, reportDate, ok := h.resolveOwnerAndDate(c)
	if !ok {
		return
	}

	officer, err := h.userService.GetByID(c.Request.Context(), officerID)
	if err != nil {
		HandleError(c, err)
		return
	}

	sheets := make([]export.Sheet, 0, len(report.All()))
	for _, desc := range report.All() {
		doc, err := h.reportService.Load(c.Request.Context(), desc.ID, officerID, reportDate)
		if err != nil {
			HandleError(c, err)
			return
		}
		sheets = append(sheets, export.Sheet{Descriptor: desc, Values: report.ToStorage(desc, doc)})
	}

	f, err := export.BuildDaySheet(officer.FullName, reportDate, sheets)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("dsr_%s.xlsx", reportDate.Format(reportDateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if _, err := f.WriteTo(c.Writer); err != nil {
		requestID, _ := c.Get("request_id")
		log.Printf("[%v] report export write failed: %v", requestID, err)
	}
}

// resolveOwnerAndDate determines whose report is being read and for which day.
// Officers always read their own rows; dsr-admins and admins may pass
// officer_id to read another officer's day.
func (h *ReportHandler) resolveOwnerAndDate(c *gin.Context) (uuid.UUID, time.Time, bool) {
	currentUserID, currentRole, ok := extractAuthContext(c)
	if !ok {
		return uuid.Nil, time.Time{}, false
	}

	dateParam := c.Query("date")
	if dateParam == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return uuid.Nil, time.Time{}, false
	}
	reportDate, err := time.Parse(reportDateLayout, dateParam)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be in YYYY-MM-DD format")
		return uuid.Nil, time.Time{}, false
	}

	officerID := currentUserID
	if param := c.Query("officer_id"); param != "" {
		requested, err := uuid.Parse(param)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid officer ID")
			return uuid.Nil, time.Time{}, false
		}
		if requested != currentUserID && currentRole != domain.RoleDSRAdmin && currentRole != domain.RoleAdmin {
			RespondError(c, http.StatusForbidden, "FORBIDDEN", "officers may only read their own reports")
			return uuid.Nil, time.Time{}, false
		}
		officerID = requested
	}

	return officerID, reportDate, true
}
