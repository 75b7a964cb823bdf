package client

import (
	"context"

	"github.com/andrelcunha/ottermq/internal/config"
	"github.com/andrelcunha/ottermq/pkg/protoc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type MQClient struct {
	Config config.ClientConfig

	dialOptions []grpc.DialOption
}

func NewMQClient(config config.ClientConfig, opts ...grpc.DialOption) *MQClient {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	return &MQClient{
		Config:      config,
		dialOptions: opts,
	}
}

func (c *MQClient) createClient() (*grpc.ClientConn, protoc.BrokerServiceClient, error) {
	conn, err := grpc.NewClient(c.Config.BrokerAddr, c.dialOptions...)
	if err != nil {
		return nil, nil, err
	}

	return conn, protoc.NewBrokerServiceClient(conn), nil
}

func (c *MQClient) queueRequest(name string) *protoc.QueueRequest {
	return &protoc.QueueRequest{Vhost: c.Config.DefaultVHost, QueueName: name}
}

func (c *MQClient) ListQueues(ctx context.Context) ([]*protoc.Queue, error) {
	conn, client, err := c.createClient()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	res, err := client.ListQueues(ctx, &protoc.ListQueuesRequest{})
	if err != nil {
		return nil, err
	}
	return res.GetQueues(), nil
}

func (c *MQClient) CreateQueue(ctx context.Context, name string) (*protoc.Queue, error) {
	conn, client, err := c.createClient()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return client.CreateQueue(ctx, c.queueRequest(name))
}

func (c *MQClient) DeleteQueue(ctx context.Context, name string) error {
	conn, client, err := c.createClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = client.DeleteQueue(ctx, c.queueRequest(name))
	return err
}

func (c *MQClient) CountMessages(ctx context.Context, name string) (int64, error) {
	conn, client, err := c.createClient()
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	res, err := client.CountMessages(ctx, c.queueRequest(name))
	if err != nil {
		return 0, err
	}
	return res.GetCount(), nil
}

// ConsumeMessage polls one message from the queue. ok is false when the
// queue was empty.
func (c *MQClient) ConsumeMessage(ctx context.Context, name string) (msg *protoc.Message, ok bool, err error) {
	conn, client, err := c.createClient()
	if err != nil {
		return nil, false, err
	}
	defer conn.Close()

	res, err := client.ConsumeMessage(ctx, c.queueRequest(name))
	if err != nil {
		return nil, false, err
	}
	if res.GetEmpty() {
		return nil, false, nil
	}
	return res.GetMessage(), true, nil
}

func (c *MQClient) PublishMessage(ctx context.Context, name string, payload []byte) (*protoc.Message, error) {
	conn, client, err := c.createClient()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return client.PublishMessage(ctx, &protoc.PublishMessageRequest{
		Vhost:     c.Config.DefaultVHost,
		QueueName: name,
		Payload:   payload,
	})
}

func (c *MQClient) PeekMessages(ctx context.Context, name string, count int) ([]*protoc.Message, error) {
	conn, client, err := c.createClient()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	res, err := client.PeekMessages(ctx, &protoc.PeekMessagesRequest{
		Vhost:     c.Config.DefaultVHost,
		QueueName: name,
		Count:     int32(count),
	})
	if err != nil {
		return nil, err
	}
	return res.GetMessages(), nil
}

func (c *MQClient) ListExchanges(ctx context.Context) ([]*protoc.Exchange, error) {
	conn, client, err := c.createClient()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	res, err := client.ListExchanges(ctx, &protoc.ListExchangesRequest{})
	if err != nil {
		return nil, err
	}
	return res.GetExchanges(), nil
}

// CreateExchange declares an exchange of kind "direct" or "fanout". An
// empty kind means direct.
func (c *MQClient) CreateExchange(ctx context.Context, name, kind string) (*protoc.Exchange, error) {
	conn, client, err := c.createClient()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return client.CreateExchange(ctx, &protoc.ExchangeRequest{
		Vhost:        c.Config.DefaultVHost,
		ExchangeName: name,
		ExchangeType: kind,
	})
}

func (c *MQClient) DeleteExchange(ctx context.Context, name string) error {
	conn, client, err := c.createClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = client.DeleteExchange(ctx, &protoc.ExchangeRequest{Vhost: c.Config.DefaultVHost, ExchangeName: name})
	return err
}

func (c *MQClient) bindingRequest(exchange, queue, routingKey string) *protoc.BindingRequest {
	return &protoc.BindingRequest{
		Vhost:        c.Config.DefaultVHost,
		ExchangeName: exchange,
		QueueName:    queue,
		RoutingKey:   routingKey,
	}
}

func (c *MQClient) BindQueue(ctx context.Context, exchange, queue, routingKey string) error {
	conn, client, err := c.createClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = client.BindQueue(ctx, c.bindingRequest(exchange, queue, routingKey))
	return err
}

func (c *MQClient) UnbindQueue(ctx context.Context, exchange, queue, routingKey string) error {
	conn, client, err := c.createClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = client.UnbindQueue(ctx, c.bindingRequest(exchange, queue, routingKey))
	return err
}

func (c *MQClient) ListBindings(ctx context.Context, exchange string) ([]*protoc.Binding, error) {
	conn, client, err := c.createClient()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	res, err := client.ListBindings(ctx, &protoc.ListBindingsRequest{Vhost: c.Config.DefaultVHost, ExchangeName: exchange})
	if err != nil {
		return nil, err
	}
	return res.GetBindings(), nil
}

// Publish routes payload through exchange. An empty exchange is the default
// exchange, which delivers to the queue named by routingKey.
func (c *MQClient) Publish(ctx context.Context, exchange, routingKey string, payload []byte) ([]*protoc.RoutedMessage, error) {
	conn, client, err := c.createClient()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	res, err := client.Publish(ctx, &protoc.PublishRequest{
		Vhost:        c.Config.DefaultVHost,
		ExchangeName: exchange,
		RoutingKey:   routingKey,
		Payload:      payload,
	})
	if err != nil {
		return nil, err
	}
	return res.GetRouted(), nil
}
