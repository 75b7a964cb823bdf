package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/andrelcunha/ottermq/internal/broker"
	"github.com/andrelcunha/ottermq/internal/storage"
	"github.com/andrelcunha/ottermq/pkg/protoc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type BrokerServiceServer struct {
	protoc.UnimplementedBrokerServiceServer
	Broker *broker.Broker
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, broker.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, broker.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, broker.ErrCapacity):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, broker.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toMessage(msg *storage.Message) *protoc.Message {
	return &protoc.Message{
		Id:         msg.ID,
		Payload:    msg.Payload,
		EnqueuedAt: timestamppb.New(msg.EnqueuedAt),
		Seq:        msg.Seq,
	}
}

func toQueue(q broker.QueueSummary) *protoc.Queue {
	return &protoc.Queue{
		Vhost:     q.VHost,
		Name:      q.Name,
		Messages:  int64(q.Messages),
		CreatedAt: timestamppb.New(q.CreatedAt),
	}
}

func toExchange(x broker.ExchangeSummary) *protoc.Exchange {
	return &protoc.Exchange{Vhost: x.VHost, Name: x.Name, Type: x.Type}
}

func (s *BrokerServiceServer) ListQueues(ctx context.Context, req *protoc.ListQueuesRequest) (*protoc.ListQueuesResponse, error) {
	queues := s.Broker.ListQueues()

	res := &protoc.ListQueuesResponse{Queues: make([]*protoc.Queue, 0, len(queues))}
	for _, q := range queues {
		res.Queues = append(res.Queues, toQueue(q))
	}
	return res, nil
}

func (s *BrokerServiceServer) CreateQueue(ctx context.Context, req *protoc.QueueRequest) (*protoc.Queue, error) {
	summary, err := s.Broker.CreateQueue(req.GetVhost(), req.GetQueueName())
	if err != nil {
		return nil, toStatus(err)
	}
	return toQueue(summary), nil
}

func (s *BrokerServiceServer) DeleteQueue(ctx context.Context, req *protoc.QueueRequest) (*protoc.BrokerResponse, error) {
	if err := s.Broker.DeleteQueue(req.GetVhost(), req.GetQueueName()); err != nil {
		return nil, toStatus(err)
	}
	return &protoc.BrokerResponse{Message: fmt.Sprintf("queue %s deleted", req.GetQueueName())}, nil
}

func (s *BrokerServiceServer) CountMessages(ctx context.Context, req *protoc.QueueRequest) (*protoc.CountResponse, error) {
	count, err := s.Broker.CountMessages(req.GetVhost(), req.GetQueueName())
	if err != nil {
		return nil, toStatus(err)
	}
	return &protoc.CountResponse{Count: int64(count)}, nil
}

func (s *BrokerServiceServer) ConsumeMessage(ctx context.Context, req *protoc.QueueRequest) (*protoc.ConsumeResponse, error) {
	delivery, err := s.Broker.ConsumeMessage(req.GetVhost(), req.GetQueueName())
	if err != nil {
		return nil, toStatus(err)
	}

	if delivery.Empty {
		return &protoc.ConsumeResponse{Empty: true}, nil
	}
	return &protoc.ConsumeResponse{Message: toMessage(delivery.Message)}, nil
}

func (s *BrokerServiceServer) PublishMessage(ctx context.Context, req *protoc.PublishMessageRequest) (*protoc.Message, error) {
	msg, err := s.Broker.PublishMessage(req.GetVhost(), req.GetQueueName(), req.GetPayload())
	if err != nil {
		return nil, toStatus(err)
	}
	return toMessage(msg), nil
}

func (s *BrokerServiceServer) PeekMessages(ctx context.Context, req *protoc.PeekMessagesRequest) (*protoc.MessageList, error) {
	msgs, err := s.Broker.PeekMessages(req.GetVhost(), req.GetQueueName(), int(req.GetCount()))
	if err != nil {
		return nil, toStatus(err)
	}

	res := &protoc.MessageList{Messages: make([]*protoc.Message, 0, len(msgs))}
	for _, msg := range msgs {
		res.Messages = append(res.Messages, toMessage(msg))
	}
	return res, nil
}

func (s *BrokerServiceServer) ListExchanges(ctx context.Context, req *protoc.ListExchangesRequest) (*protoc.ListExchangesResponse, error) {
	exchanges := s.Broker.ListExchanges()

	res := &protoc.ListExchangesResponse{Exchanges: make([]*protoc.Exchange, 0, len(exchanges))}
	for _, x := range exchanges {
		res.Exchanges = append(res.Exchanges, toExchange(x))
	}
	return res, nil
}

func (s *BrokerServiceServer) CreateExchange(ctx context.Context, req *protoc.ExchangeRequest) (*protoc.Exchange, error) {
	summary, err := s.Broker.CreateExchange(req.GetVhost(), req.GetExchangeName(), req.GetExchangeType())
	if err != nil {
		return nil, toStatus(err)
	}
	return toExchange(summary), nil
}

func (s *BrokerServiceServer) DeleteExchange(ctx context.Context, req *protoc.ExchangeRequest) (*protoc.BrokerResponse, error) {
	if err := s.Broker.DeleteExchange(req.GetVhost(), req.GetExchangeName()); err != nil {
		return nil, toStatus(err)
	}
	return &protoc.BrokerResponse{Message: fmt.Sprintf("exchange %s deleted", req.GetExchangeName())}, nil
}

func (s *BrokerServiceServer) BindQueue(ctx context.Context, req *protoc.BindingRequest) (*protoc.BrokerResponse, error) {
	if err := s.Broker.BindQueue(req.GetVhost(), req.GetExchangeName(), req.GetQueueName(), req.GetRoutingKey()); err != nil {
		return nil, toStatus(err)
	}
	return &protoc.BrokerResponse{Message: fmt.Sprintf("queue %s bound to exchange %s", req.GetQueueName(), req.GetExchangeName())}, nil
}

func (s *BrokerServiceServer) UnbindQueue(ctx context.Context, req *protoc.BindingRequest) (*protoc.BrokerResponse, error) {
	if err := s.Broker.UnbindQueue(req.GetVhost(), req.GetExchangeName(), req.GetQueueName(), req.GetRoutingKey()); err != nil {
		return nil, toStatus(err)
	}
	return &protoc.BrokerResponse{Message: fmt.Sprintf("queue %s unbound from exchange %s", req.GetQueueName(), req.GetExchangeName())}, nil
}

func (s *BrokerServiceServer) ListBindings(ctx context.Context, req *protoc.ListBindingsRequest) (*protoc.ListBindingsResponse, error) {
	bindings, err := s.Broker.ListBindings(req.GetVhost(), req.GetExchangeName())
	if err != nil {
		return nil, toStatus(err)
	}

	res := &protoc.ListBindingsResponse{Bindings: make([]*protoc.Binding, 0, len(bindings))}
	for _, b := range bindings {
		res.Bindings = append(res.Bindings, &protoc.Binding{
			Vhost:      b.VHost,
			Exchange:   b.Exchange,
			Queue:      b.Queue,
			RoutingKey: b.RoutingKey,
		})
	}
	return res, nil
}

func (s *BrokerServiceServer) Publish(ctx context.Context, req *protoc.PublishRequest) (*protoc.PublishResponse, error) {
	routed, err := s.Broker.Publish(req.GetVhost(), req.GetExchangeName(), req.GetRoutingKey(), req.GetPayload())
	if err != nil {
		return nil, toStatus(err)
	}

	res := &protoc.PublishResponse{Routed: make([]*protoc.RoutedMessage, 0, len(routed))}
	for _, r := range routed {
		res.Routed = append(res.Routed, &protoc.RoutedMessage{Queue: r.Queue, Message: toMessage(r.Message)})
	}
	return res, nil
}

// Server owns the gRPC server instance.
type Server struct {
	grpc *grpc.Server
}

func New(b *broker.Broker, opts ...grpc.ServerOption) *Server {
	s := &Server{grpc: grpc.NewServer(opts...)}
	protoc.RegisterBrokerServiceServer(s.grpc, &BrokerServiceServer{Broker: b})
	return s
}

// ListenAndServe binds to addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %v", addr, err)
	}
	return s.Serve(ctx, lis)
}

func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.grpc.Serve(lis) }()

	select {
	case <-ctx.Done():
		s.grpc.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}
