package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/handler"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/middleware"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/report"
	"github.com/shreemathi-1/dsrfinal-sub001/mocks"
)

func setAuthContext(c *gin.Context, userID uuid.UUID, role string) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
	c.Set(middleware.ContextKeyEmail, "user@test.gov.in")
}

func newReportHandler() (*handler.ReportHandler, *mocks.MockReportService, *mocks.MockUserService) {
	reportSvc := new(mocks.MockReportService)
	userSvc := new(mocks.MockUserService)
	return handler.NewReportHandler(reportSvc, userSvc), reportSvc, userSvc
}

func TestReportHandler_Save_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, reportSvc, userSvc := newReportHandler()

	officerID := uuid.New()
	officer := &domain.User{ID: officerID, Role: domain.RoleOfficer, District: "Chennai"}
	userSvc.On("GetByID", mock.Anything, officerID).Return(officer, nil)

	expectedDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	reportSvc.On("Save", mock.Anything, officer, "amount_lost_frozen", expectedDate, mock.Anything).
		Return(map[string]interface{}{"amount_lost_on_date": 500.0}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"report_date": "2025-03-14",
		"data": report.Document{
			"amountLost": map[string]interface{}{"onDate": 500.0},
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/reports/amount_lost_frozen", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "reportId", Value: "amount_lost_frozen"}}
	setAuthContext(c, officerID, "officer")

	h.Save(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	reportSvc.AssertExpectations(t)
}

func TestReportHandler_Save_BadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, reportSvc, _ := newReportHandler()

	body, _ := json.Marshal(map[string]interface{}{
		"report_date": "14-03-2025",
		"data":        report.Document{},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/reports/amount_lost_frozen", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "reportId", Value: "amount_lost_frozen"}}
	setAuthContext(c, uuid.New(), "officer")

	h.Save(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reportSvc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportHandler_Load_OfficerReadsOwnRow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, reportSvc, _ := newReportHandler()

	officerID := uuid.New()
	expectedDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	reportSvc.On("Load", mock.Anything, "stages_of_cases", officerID, expectedDate).
		Return(report.Document{"received": map[string]interface{}{"onDate": 3.0}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/stages_of_cases?date=2025-03-14", nil)
	c.Params = gin.Params{{Key: "reportId", Value: "stages_of_cases"}}
	setAuthContext(c, officerID, "officer")

	h.Load(c)

	assert.Equal(t, http.StatusOK, w.Code)
	reportSvc.AssertExpectations(t)
}

func TestReportHandler_Load_OfficerCannotReadOthers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, reportSvc, _ := newReportHandler()

	otherID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/stages_of_cases?date=2025-03-14&officer_id="+otherID.String(), nil)
	c.Params = gin.Params{{Key: "reportId", Value: "stages_of_cases"}}
	setAuthContext(c, uuid.New(), "officer")

	h.Load(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	reportSvc.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportHandler_Load_DSRAdminReadsAnyOfficer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, reportSvc, _ := newReportHandler()

	officerID := uuid.New()
	expectedDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	reportSvc.On("Load", mock.Anything, "stages_of_cases", officerID, expectedDate).
		Return(report.Document{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/stages_of_cases?date=2025-03-14&officer_id="+officerID.String(), nil)
	c.Params = gin.Params{{Key: "reportId", Value: "stages_of_cases"}}
	setAuthContext(c, uuid.New(), "dsr-admin")

	h.Load(c)

	assert.Equal(t, http.StatusOK, w.Code)
	reportSvc.AssertExpectations(t)
}

func TestReportHandler_Load_MissingDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, reportSvc, _ := newReportHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/stages_of_cases", nil)
	c.Params = gin.Params{{Key: "reportId", Value: "stages_of_cases"}}
	setAuthContext(c, uuid.New(), "officer")

	h.Load(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reportSvc.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
