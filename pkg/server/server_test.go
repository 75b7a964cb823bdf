package server

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/andrelcunha/ottermq/internal/broker"
	"github.com/andrelcunha/ottermq/internal/config"
	"github.com/andrelcunha/ottermq/pkg/protoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestServer() *BrokerServiceServer {
	return &BrokerServiceServer{Broker: broker.NewBroker(config.Config{}, nil)}
}

func TestToStatus(t *testing.T) {
	cases := map[error]codes.Code{
		fmt.Errorf("queue q: %w", broker.ErrNotFound):        codes.NotFound,
		fmt.Errorf("queue q: %w", broker.ErrAlreadyExists):   codes.AlreadyExists,
		fmt.Errorf("queue q: %w", broker.ErrCapacity):        codes.ResourceExhausted,
		fmt.Errorf("queue q: %w", broker.ErrInvalidArgument): codes.InvalidArgument,
		errors.New("disk failure"):                           codes.Internal,
	}

	for err, code := range cases {
		assert.Equal(t, code, status.Code(toStatus(err)), err.Error())
	}
}

func TestBrokerServiceServer_ConsumeShapes(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()
	jobs := &protoc.QueueRequest{QueueName: "jobs"}

	created, err := s.CreateQueue(ctx, jobs)
	require.NoError(t, err)
	assert.Equal(t, "/", created.GetVhost())
	assert.False(t, created.GetCreatedAt().AsTime().IsZero())

	res, err := s.ConsumeMessage(ctx, jobs)
	require.NoError(t, err)
	assert.True(t, res.GetEmpty())
	assert.Nil(t, res.GetMessage())

	published, err := s.PublishMessage(ctx, &protoc.PublishMessageRequest{QueueName: "jobs", Payload: []byte{0xff, 0x00}})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), published.GetSeq())

	res, err = s.ConsumeMessage(ctx, jobs)
	require.NoError(t, err)
	assert.False(t, res.GetEmpty())
	assert.Equal(t, published.GetId(), res.GetMessage().GetId())
	assert.Equal(t, []byte{0xff, 0x00}, res.GetMessage().GetPayload())
	assert.Equal(t, published.GetEnqueuedAt().AsTime(), res.GetMessage().GetEnqueuedAt().AsTime())

	list, err := s.ListQueues(ctx, &protoc.ListQueuesRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetQueues(), 1)
	assert.Equal(t, "jobs", list.GetQueues()[0].GetName())
	assert.Equal(t, int64(0), list.GetQueues()[0].GetMessages())
}

func TestBrokerServiceServer_PeekAndCount(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	_, err := s.CreateQueue(ctx, &protoc.QueueRequest{QueueName: "jobs"})
	require.NoError(t, err)
	for _, p := range []string{"a", "b", "c"} {
		_, err := s.PublishMessage(ctx, &protoc.PublishMessageRequest{QueueName: "jobs", Payload: []byte(p)})
		require.NoError(t, err)
	}

	count, err := s.CountMessages(ctx, &protoc.QueueRequest{QueueName: "jobs"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count.GetCount())

	peeked, err := s.PeekMessages(ctx, &protoc.PeekMessagesRequest{QueueName: "jobs", Count: 2})
	require.NoError(t, err)
	require.Len(t, peeked.GetMessages(), 2)
	assert.Equal(t, "a", string(peeked.GetMessages()[0].GetPayload()))
	assert.Equal(t, "b", string(peeked.GetMessages()[1].GetPayload()))

	_, err = s.PeekMessages(ctx, &protoc.PeekMessagesRequest{QueueName: "jobs", Count: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.DeleteQueue(ctx, &protoc.QueueRequest{QueueName: "jobs"})
	require.NoError(t, err)
	_, err = s.CountMessages(ctx, &protoc.QueueRequest{QueueName: "jobs"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestBrokerServiceServer_ExchangeFlow(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	for _, name := range []string{"orders", "audit"} {
		_, err := s.CreateQueue(ctx, &protoc.QueueRequest{QueueName: name})
		require.NoError(t, err)
	}

	x, err := s.CreateExchange(ctx, &protoc.ExchangeRequest{ExchangeName: "events", ExchangeType: "direct"})
	require.NoError(t, err)
	assert.Equal(t, "direct", x.GetType())

	_, err = s.CreateExchange(ctx, &protoc.ExchangeRequest{ExchangeName: "events"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = s.BindQueue(ctx, &protoc.BindingRequest{ExchangeName: "events", QueueName: "orders", RoutingKey: "created"})
	require.NoError(t, err)
	_, err = s.BindQueue(ctx, &protoc.BindingRequest{ExchangeName: "events", QueueName: "audit", RoutingKey: "paid"})
	require.NoError(t, err)

	bindings, err := s.ListBindings(ctx, &protoc.ListBindingsRequest{ExchangeName: "events"})
	require.NoError(t, err)
	require.Len(t, bindings.GetBindings(), 2)
	assert.Equal(t, "audit", bindings.GetBindings()[0].GetQueue())
	assert.Equal(t, "paid", bindings.GetBindings()[0].GetRoutingKey())

	routed, err := s.Publish(ctx, &protoc.PublishRequest{ExchangeName: "events", RoutingKey: "created", Payload: []byte("order-1")})
	require.NoError(t, err)
	require.Len(t, routed.GetRouted(), 1)
	assert.Equal(t, "orders", routed.GetRouted()[0].GetQueue())
	assert.Equal(t, "order-1", string(routed.GetRouted()[0].GetMessage().GetPayload()))

	_, err = s.UnbindQueue(ctx, &protoc.BindingRequest{ExchangeName: "events", QueueName: "orders", RoutingKey: "created"})
	require.NoError(t, err)
	routed, err = s.Publish(ctx, &protoc.PublishRequest{ExchangeName: "events", RoutingKey: "created", Payload: []byte("order-2")})
	require.NoError(t, err)
	assert.Empty(t, routed.GetRouted())

	list, err := s.ListExchanges(ctx, &protoc.ListExchangesRequest{})
	require.NoError(t, err)
	names := make([]string, 0)
	for _, e := range list.GetExchanges() {
		names = append(names, e.GetName())
	}
	assert.Equal(t, []string{broker.DefaultExchange, "events"}, names)

	_, err = s.DeleteExchange(ctx, &protoc.ExchangeRequest{ExchangeName: "events"})
	require.NoError(t, err)
	_, err = s.Publish(ctx, &protoc.PublishRequest{ExchangeName: "events", Payload: []byte("x")})
	assert.Equal(t, codes.NotFound, status.Code(err))
	_, err = s.BindQueue(ctx, &protoc.BindingRequest{ExchangeName: broker.DefaultExchange, QueueName: "orders", RoutingKey: "k"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
