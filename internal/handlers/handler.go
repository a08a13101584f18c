package handlers

import (
	"net/http"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/gin-gonic/gin"
)

// Handler exposes the automation over HTTP: the cron trigger endpoint and the
// admin API used by the dashboard.
type Handler struct {
	planned    contract.PlannedMessageService
	akten      contract.AktenService
	automation contract.AutomationService
	adminToken string
	cronSecret string
	clock      func() time.Time
}

func New(planned contract.PlannedMessageService, akten contract.AktenService, automation contract.AutomationService, adminToken, cronSecret string) *Handler {
	return &Handler{
		planned:    planned,
		akten:      akten,
		automation: automation,
		adminToken: adminToken,
		cronSecret: cronSecret,
		clock:      time.Now,
	}
}

// WithClock overrides the time source handed to the automation run.
func (h *Handler) WithClock(clock func() time.Time) *Handler {
	h.clock = clock
	return h
}

func (h *Handler) AddRoutes(r *gin.Engine) {
	r.GET("/health", h.HealthCheckHandle)

	cron := r.Group("/cron", RequireBearer(h.cronSecret))
	cron.GET("/automation", h.RunAutomationHandle)
	cron.POST("/automation", h.RunAutomationHandle)

	api := r.Group("/api", RequireBearer(h.adminToken))

	planned := api.Group("/planned-messages")
	planned.GET("", h.ListPlannedMessagesHandle)
	planned.POST("", RequirePayload(), h.CreatePlannedMessageHandle)
	planned.GET("/:id", h.GetPlannedMessageHandle)
	planned.PUT("/:id", RequirePayload(), h.UpdatePlannedMessageHandle)
	planned.DELETE("/:id", h.DeletePlannedMessageHandle)
	planned.POST("/:id/test", h.SendTestPlannedMessageHandle)

	akten := api.Group("/akten")
	akten.GET("/settings", h.GetAktenSettingsHandle)
	akten.PUT("/settings", RequirePayload(), h.UpdateAktenSettingsHandle)
	akten.GET("/pool", h.ListPoolHandle)
	akten.POST("/pool", RequirePayload(), h.UpsertCandidateHandle)
	akten.DELETE("/pool/*name", h.RemoveCandidateHandle)
	akten.POST("/pool/reset", h.ResetFairnessHandle)
	akten.GET("/history", h.ListHistoryHandle)
}

func (h *Handler) HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
