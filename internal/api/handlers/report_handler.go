package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aldisetiana/posdash/backend-go/internal/service"
)

type ReportHandler struct {
	service *service.ReportService
}

func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type generateDailyRequest struct {
	StoreID    string `json:"storeId"`
	ReportDate string `json:"reportDate"`
}

// GenerateDaily runs the report pipeline for one store and day. The date
// defaults to the current UTC day when omitted.
func (h *ReportHandler) GenerateDaily(c *gin.Context) {
	var req generateDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.StoreID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storeId is required"})
		return
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storeId must be a valid uuid"})
		return
	}

	day := time.Now().UTC()
	if req.ReportDate != "" {
		day, err = time.Parse("2006-01-02", req.ReportDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reportDate must be YYYY-MM-DD"})
			return
		}
	}

	report, err := h.service.GenerateDaily(c.Request.Context(), storeID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

// GetReport returns a previously generated report.
func (h *ReportHandler) GetReport(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storeId must be a valid uuid"})
		return
	}

	reportDate := c.Param("date")
	if _, err := time.Parse("2006-01-02", reportDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	report, err := h.service.GetReport(c.Request.Context(), storeID, reportDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch report", "details": err.Error()})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

// GetInventoryAlerts returns the store's current low-stock alerts.
func (h *ReportHandler) GetInventoryAlerts(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storeId must be a valid uuid"})
		return
	}

	alerts, err := h.service.GetInventoryAlerts(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inventory alerts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// InvalidateStoreCache drops the store's cached reports so the dashboard
// reads fresh data on the next fetch.
func (h *ReportHandler) InvalidateStoreCache(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storeId must be a valid uuid"})
		return
	}

	if err := h.service.InvalidateCache(c.Request.Context(), storeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to invalidate cache", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetBaselines returns the store's persisted daily-revenue baselines.
func (h *ReportHandler) GetBaselines(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storeId must be a valid uuid"})
		return
	}

	baselines, err := h.service.GetBaselines(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch baselines", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"baselines": baselines})
}
