package handlers

import (
	"net/http"
	"strconv"

	"github.com/galactic-marines/gm-automation/internal/domain/entity"
	"github.com/galactic-marines/gm-automation/pkg/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListPlannedMessagesHandle(c *gin.Context) {
	messages, err := h.planned.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if messages == nil {
		messages = []*entity.PlannedMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

func (h *Handler) GetPlannedMessageHandle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	msg, err := h.planned.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) CreatePlannedMessageHandle(c *gin.Context) {
	var req models.PlannedMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	msg := req.ToEntity(0)
	if err := h.planned.Create(c.Request.Context(), msg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *Handler) UpdatePlannedMessageHandle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.PlannedMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	msg := req.ToEntity(id)
	if err := h.planned.Update(c.Request.Context(), msg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) DeletePlannedMessageHandle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.planned.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SendTestPlannedMessageHandle delivers the message now with confirmation.
func (h *Handler) SendTestPlannedMessageHandle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	messageID, err := h.planned.SendTest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TestSendResponse{MessageID: messageID})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
