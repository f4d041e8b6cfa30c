package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/service"
)

// ComplaintHandler handles complaint endpoints.
type ComplaintHandler struct {
	complaintService service.ComplaintService
	evidenceService  service.EvidenceService
}

// NewComplaintHandler creates a new ComplaintHandler.
func NewComplaintHandler(complaintService service.ComplaintService, evidenceService service.EvidenceService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService, evidenceService: evidenceService}
}

// Create handles POST /api/v1/complaints
func (h *ComplaintHandler) Create(c *gin.Context) {
	currentUserID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	complaint, err := h.complaintService.Create(c.Request.Context(), currentUserID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, complaint)
}

// List handles GET /api/v1/complaints
func (h *ComplaintHandler) List(c *gin.Context) {
	filter := domain.ComplaintFilter{
		District:      c.Query("district"),
		PoliceStation: c.Query("police_station"),
		Category:      c.Query("category"),
		Status:        domain.ComplaintStatus(c.Query("status")),
		SortBy:        c.Query("sort_by"),
		SortDesc:      c.Query("sort_order") == "desc",
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(reportDateLayout, from)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be in YYYY-MM-DD format")
			return
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(reportDateLayout, to)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be in YYYY-MM-DD format")
			return
		}
		filter.To = &t
	}

	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	complaints, total, err := h.complaintService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, complaints, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/complaints/:id
func (h *ComplaintHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid complaint ID")
		return
	}

	complaint, err := h.complaintService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, complaint)
}

// Update handles PUT /api/v1/complaints/:id
func (h *ComplaintHandler) Update(c *gin.Context) {
	currentUserID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid complaint ID")
		return
	}

	var input service.UpdateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	complaint, err := h.complaintService.Update(c.Request.Context(), currentUserID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, complaint)
}

// Delete handles DELETE /api/v1/complaints/:id
func (h *ComplaintHandler) Delete(c *gin.Context) {
	currentUserID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid complaint ID")
		return
	}

	if err := h.complaintService.SoftDelete(c.Request.Context(), currentUserID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "complaint deleted"})
}

// UploadEvidence handles POST /api/v1/complaints/:id/evidence
func (h *ComplaintHandler) UploadEvidence(c *gin.Context) {
	currentUserID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid complaint ID")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	evidence, err := h.evidenceService.Upload(c.Request.Context(), service.EvidenceUploadInput{
		ComplaintID: id,
		UploadedBy:  currentUserID,
		File:        file,
		Header:      header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, evidence)
}

// ListEvidence handles GET /api/v1/complaints/:id/evidence
func (h *ComplaintHandler) ListEvidence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid complaint ID")
		return
	}

	items, err := h.evidenceService.ListByComplaint(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, items)
}
