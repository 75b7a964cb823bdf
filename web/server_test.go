package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andrelcunha/ottermq/internal/broker"
	"github.com/andrelcunha/ottermq/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, app http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestWebServer_QueueFlow(t *testing.T) {
	app := NewWebServer(broker.NewBroker(config.Config{}, nil)).SetupApp()

	rec, out := do(t, app, http.MethodPost, "/api/queues", `{"queue_name":"q1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "q1", out["name"])
	assert.Equal(t, "/", out["vhost"])

	rec, _ = do(t, app, http.MethodPost, "/api/queues", `{"queue_name":"q1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	for _, p := range []string{"a", "b"} {
		rec, _ = do(t, app, http.MethodPost, "/api/messages", `{"queue":"q1","payload":"`+p+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, out = do(t, app, http.MethodGet, "/api/queues", "")
	require.Equal(t, http.StatusOK, rec.Code)
	queues := out["queues"].([]any)
	require.Len(t, queues, 1)
	assert.Equal(t, float64(2), queues[0].(map[string]any)["messages"])

	rec, out = do(t, app, http.MethodPost, "/api/queues/q1/consume", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a", out["data"])
	assert.Equal(t, "utf-8", out["encoding"])

	rec, out = do(t, app, http.MethodGet, "/api/queues/q1/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), out["data"].(map[string]any)["count"])

	rec, _ = do(t, app, http.MethodDelete, "/api/queues/q1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, app, http.MethodGet, "/api/queues/q1/count", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebServer_ConsumeEmpty(t *testing.T) {
	app := NewWebServer(broker.NewBroker(config.Config{}, nil)).SetupApp()

	rec, _ := do(t, app, http.MethodPost, "/api/queues", `{"queue_name":"jobs","vhost":"staging"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, out := do(t, app, http.MethodPost, "/api/queues/jobs/consume?vhost=staging", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["empty"])
	assert.Nil(t, out["data"])

	rec, _ = do(t, app, http.MethodPost, "/api/queues/jobs/consume", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebServer_BadRequests(t *testing.T) {
	app := NewWebServer(broker.NewBroker(config.Config{QueueMaxMessages: 1}, nil)).SetupApp()

	rec, _ := do(t, app, http.MethodPost, "/api/queues", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, app, http.MethodPost, "/api/queues", `{"queue_name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, app, http.MethodDelete, "/api/queues/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, app, http.MethodPost, "/api/queues", `{"queue_name":"small"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = do(t, app, http.MethodPost, "/api/messages", `{"queue":"small","payload":"a"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = do(t, app, http.MethodPost, "/api/messages", `{"queue":"small","payload":"b"}`)
	assert.Equal(t, http.StatusInsufficientStorage, rec.Code)
}

func TestWebServer_Healthz(t *testing.T) {
	app := NewWebServer(broker.NewBroker(config.Config{}, nil)).SetupApp()

	rec, out := do(t, app, http.MethodGet, "/api/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", out["status"])
}

func TestWebServer_BinaryPayloadsUseBase64(t *testing.T) {
	b := broker.NewBroker(config.Config{}, nil)
	app := NewWebServer(b).SetupApp()
	binary := []byte{0xff, 0xfe, 0x00, 0x01}

	rec, _ := do(t, app, http.MethodPost, "/api/queues", `{"queue_name":"blobs"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	_, err := b.PublishMessage("", "blobs", binary)
	require.NoError(t, err)
	rec, out := do(t, app, http.MethodPost, "/api/queues/blobs/consume", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "base64", out["encoding"])
	decoded, err := base64.StdEncoding.DecodeString(out["data"].(string))
	require.NoError(t, err)
	assert.Equal(t, binary, decoded)

	body := `{"queue":"blobs","encoding":"base64","payload":"` + base64.StdEncoding.EncodeToString(binary) + `"}`
	rec, _ = do(t, app, http.MethodPost, "/api/messages", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	delivery, err := b.ConsumeMessage("", "blobs")
	require.NoError(t, err)
	assert.Equal(t, binary, delivery.Message.Payload)

	rec, _ = do(t, app, http.MethodPost, "/api/messages", `{"queue":"blobs","encoding":"base64","payload":"%%%"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec, _ = do(t, app, http.MethodPost, "/api/messages", `{"queue":"blobs","encoding":"hex","payload":"ff"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	count, err := b.CountMessages("", "blobs")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestWebServer_ExchangeFlow(t *testing.T) {
	app := NewWebServer(broker.NewBroker(config.Config{}, nil)).SetupApp()

	for _, name := range []string{"orders", "audit"} {
		rec, _ := do(t, app, http.MethodPost, "/api/queues", `{"queue_name":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, out := do(t, app, http.MethodPost, "/api/exchanges", `{"exchange_name":"events","exchange_type":"direct"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "events", out["name"])
	assert.Equal(t, "direct", out["type"])

	rec, _ = do(t, app, http.MethodPost, "/api/exchanges", `{"exchange_name":"events"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec, _ = do(t, app, http.MethodPost, "/api/exchanges", `{"exchange_name":"t","exchange_type":"topic"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, app, http.MethodPost, "/api/bindings", `{"exchange_name":"events","queue_name":"orders","routing_key":"created"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = do(t, app, http.MethodPost, "/api/bindings", `{"exchange_name":"events","queue_name":"audit","routing_key":"created"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = do(t, app, http.MethodPost, "/api/bindings", `{"exchange_name":"events","queue_name":"ghost","routing_key":"created"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, out = do(t, app, http.MethodGet, "/api/exchanges/events/bindings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, out["bindings"].([]any), 2)

	rec, out = do(t, app, http.MethodPost, "/api/exchanges/events/publish", `{"routing_key":"created","payload":"order-1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	routed := out["routed"].([]any)
	require.Len(t, routed, 2)
	assert.Equal(t, "audit", routed[0].(map[string]any)["queue"])
	assert.Equal(t, "orders", routed[1].(map[string]any)["queue"])

	rec, _ = do(t, app, http.MethodDelete, "/api/bindings", `{"exchange_name":"events","queue_name":"audit","routing_key":"created"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, out = do(t, app, http.MethodPost, "/api/exchanges/amq.default/publish", `{"routing_key":"audit","payload":"direct"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, out["routed"].([]any), 1)

	rec, out = do(t, app, http.MethodGet, "/api/queues/audit/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), out["data"].(map[string]any)["count"])

	rec, out = do(t, app, http.MethodGet, "/api/exchanges", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, out["exchanges"].([]any), 2)

	rec, _ = do(t, app, http.MethodDelete, "/api/exchanges/events", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec, _ = do(t, app, http.MethodDelete, "/api/exchanges/events", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = do(t, app, http.MethodDelete, "/api/exchanges/amq.default", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
