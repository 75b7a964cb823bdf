package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createExchangeRequest struct {
	ExchangeName string `json:"exchange_name"`
	ExchangeType string `json:"exchange_type"`
	VHost        string `json:"vhost"`
}

type bindingRequest struct {
	ExchangeName string `json:"exchange_name"`
	QueueName    string `json:"queue_name"`
	RoutingKey   string `json:"routing_key"`
	VHost        string `json:"vhost"`
}

type publishRequest struct {
	RoutingKey string `json:"routing_key"`
	VHost      string `json:"vhost"`
	Payload    string `json:"payload"`
	Encoding   string `json:"encoding"`
}

func (h *Handler) ListExchanges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"exchanges": h.Broker.ListExchanges()})
}

func (h *Handler) CreateExchange(c *gin.Context) {
	var req createExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := h.Broker.CreateExchange(req.VHost, req.ExchangeName, req.ExchangeType)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

func (h *Handler) DeleteExchange(c *gin.Context) {
	if err := h.Broker.DeleteExchange(c.Query("vhost"), c.Param("exchange")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListBindings(c *gin.Context) {
	bindings, err := h.Broker.ListBindings(c.Query("vhost"), c.Param("exchange"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bindings": bindings})
}

func (h *Handler) BindQueue(c *gin.Context) {
	var req bindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Broker.BindQueue(req.VHost, req.ExchangeName, req.QueueName, req.RoutingKey); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) UnbindQueue(c *gin.Context) {
	var req bindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Broker.UnbindQueue(req.VHost, req.ExchangeName, req.QueueName, req.RoutingKey); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Publish(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payload, err := decodePayload(req.Payload, req.Encoding)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	routed, err := h.Broker.Publish(req.VHost, c.Param("exchange"), req.RoutingKey, payload)
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]gin.H, 0, len(routed))
	for _, r := range routed {
		items = append(items, gin.H{"queue": r.Queue, "id": r.Message.ID, "enqueued_at": r.Message.EnqueuedAt})
	}
	c.JSON(http.StatusCreated, gin.H{"routed": items})
}
