package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/galactic-marines/gm-automation/internal/domain/entity"
	"github.com/galactic-marines/gm-automation/pkg/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetAktenSettingsHandle(c *gin.Context) {
	settings, err := h.akten.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateAktenSettingsHandle(c *gin.Context) {
	var req models.AktenSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	settings, err := h.akten.UpdateSettings(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) ListPoolHandle(c *gin.Context) {
	pool, err := h.akten.ListPool(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if pool == nil {
		pool = []*entity.PoolCandidate{}
	}
	c.JSON(http.StatusOK, pool)
}

func (h *Handler) UpsertCandidateHandle(c *gin.Context) {
	var req models.PoolCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	candidate, err := h.akten.UpsertCandidate(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// RemoveCandidateHandle takes the rest of the path as the name, since free
// text names may contain slashes.
func (h *Handler) RemoveCandidateHandle(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	if name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "candidate name is required"})
		return
	}

	if err := h.akten.RemoveCandidate(c.Request.Context(), name); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ResetFairnessHandle(c *gin.Context) {
	n, err := h.akten.ResetFairness(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ResetFairnessResponse{Reset: n})
}

// ListHistoryHandle returns the newest assignments first. The service clamps
// the limit, so only malformed values are rejected here.
func (h *Handler) ListHistoryHandle(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	history, err := h.akten.ListHistory(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if history == nil {
		history = []*entity.AktenHistoryEntry{}
	}
	c.JSON(http.StatusOK, history)
}
