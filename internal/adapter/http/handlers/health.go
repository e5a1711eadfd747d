package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/pkg/apierrors"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthStatus struct {
	AppName    string `json:"appName"`
	AppVersion string `json:"appVersion"`
	SystemTime string `json:"systemTime"`
	Database   string `json:"database"`
}

type HealthReport struct {
	HealthStatus
	Language string `json:"language"`
}

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	lang := middleware.GetLang(c)
	status := h.currentStatus(c.Request.Context())

	if status.Database != StatusOk {
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgAPIDown, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessMessage(status, apierrors.GetTransErrorMsg(apierrors.MsgAPIRunning, lang)))
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	report := HealthReport{
		HealthStatus: h.currentStatus(c.Request.Context()),
		Language:     middleware.GetLang(c),
	}
	c.JSON(http.StatusOK, dto.Success(report))
}

func (h *HealthHandler) currentStatus(ctx context.Context) HealthStatus {
	databaseStatus := StatusDown
	if h.checkConnectionToDatabase(ctx) {
		databaseStatus = StatusOk
	}

	return HealthStatus{
		AppName:    os.Getenv("APP_NAME"),
		AppVersion: getAppVersion(),
		SystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Database:   databaseStatus,
	}
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
