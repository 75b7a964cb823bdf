package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/andrelcunha/ottermq/internal/broker"
	"github.com/andrelcunha/ottermq/web/handlers/api"
	"github.com/gin-gonic/gin"
)

type WebServer struct {
	Broker *broker.Broker

	srv *http.Server
}

func NewWebServer(b *broker.Broker) *WebServer {
	ws := &WebServer{Broker: b}
	ws.srv = &http.Server{Handler: ws.SetupApp()}
	return ws
}

func (ws *WebServer) SetupApp() *gin.Engine {
	app := gin.New()
	app.Use(gin.Logger(), gin.Recovery())

	ws.AddApi(app)

	return app
}

func (ws *WebServer) AddApi(app *gin.Engine) {
	h := &api.Handler{Broker: ws.Broker}

	apiGrp := app.Group("/api")
	apiGrp.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	apiGrp.GET("/queues", h.ListQueues)
	apiGrp.POST("/queues", h.CreateQueue)
	apiGrp.DELETE("/queues/:queue", h.DeleteQueue)
	apiGrp.POST("/queues/:queue/consume", h.ConsumeMessage)
	apiGrp.GET("/queues/:queue/count", h.CountMessages)
	apiGrp.POST("/messages", h.PublishMessage)
	apiGrp.GET("/exchanges", h.ListExchanges)
	apiGrp.POST("/exchanges", h.CreateExchange)
	apiGrp.DELETE("/exchanges/:exchange", h.DeleteExchange)
	apiGrp.GET("/exchanges/:exchange/bindings", h.ListBindings)
	apiGrp.POST("/exchanges/:exchange/publish", h.Publish)
	apiGrp.POST("/bindings", h.BindQueue)
	apiGrp.DELETE("/bindings", h.UnbindQueue)
}

// ListenAndServe binds to addr and serves until ctx is done.
func (ws *WebServer) ListenAndServe(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %v", addr, err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- ws.srv.Serve(lis) }()

	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return ws.srv.Shutdown(cctx)
	case err := <-errCh:
		return err
	}
}
