package api

import (
	"errors"
	"net/http"

	"github.com/andrelcunha/ottermq/internal/broker"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Broker *broker.Broker
}

type createQueueRequest struct {
	QueueName string `json:"queue_name"`
	VHost     string `json:"vhost"`
}

type publishMessageRequest struct {
	Queue    string `json:"queue"`
	VHost    string `json:"vhost"`
	Payload  string `json:"payload"`
	Encoding string `json:"encoding"`
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, broker.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, broker.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, broker.ErrCapacity):
		return http.StatusInsufficientStorage
	case errors.Is(err, broker.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

func (h *Handler) ListQueues(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"queues": h.Broker.ListQueues()})
}

func (h *Handler) CreateQueue(c *gin.Context) {
	var req createQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := h.Broker.CreateQueue(req.VHost, req.QueueName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

func (h *Handler) DeleteQueue(c *gin.Context) {
	if err := h.Broker.DeleteQueue(c.Query("vhost"), c.Param("queue")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CountMessages(c *gin.Context) {
	count, err := h.Broker.CountMessages(c.Query("vhost"), c.Param("queue"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"count": count}})
}

func (h *Handler) ConsumeMessage(c *gin.Context) {
	delivery, err := h.Broker.ConsumeMessage(c.Query("vhost"), c.Param("queue"))
	if err != nil {
		writeError(c, err)
		return
	}

	if delivery.Empty {
		c.JSON(http.StatusOK, gin.H{"data": nil, "empty": true})
		return
	}

	data, encoding := encodePayload(delivery.Message.Payload)
	c.JSON(http.StatusOK, gin.H{
		"data":     data,
		"encoding": encoding,
		"id":       delivery.Message.ID,
		"empty":    false,
	})
}

func (h *Handler) PublishMessage(c *gin.Context) {
	var req publishMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payload, err := decodePayload(req.Payload, req.Encoding)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.Broker.PublishMessage(req.VHost, req.Queue, payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": msg.ID, "enqueued_at": msg.EnqueuedAt})
}
