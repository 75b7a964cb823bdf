package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/andrelcunha/ottermq/internal/config"
	"github.com/andrelcunha/ottermq/pkg/client"
	"github.com/spf13/cobra"
)

var mqClient *client.MQClient

func main() {
	var rootCmd = &cobra.Command{
		Use: "ottermq-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadClientConfig()
			if vhost, _ := cmd.Flags().GetString("vhost"); vhost != "" {
				cfg.DefaultVHost = vhost
			}
			mqClient = client.NewMQClient(cfg)
		},
	}
	rootCmd.PersistentFlags().StringP("vhost", "v", "", "Virtual host of the queue")

	rootCmd.AddCommand(listQueuesCmd)
	rootCmd.AddCommand(createQueueCmd)
	rootCmd.AddCommand(deleteQueueCmd)
	rootCmd.AddCommand(countMessagesCmd)
	rootCmd.AddCommand(consumeMessageCmd)
	rootCmd.AddCommand(publishMessageCmd)
	rootCmd.AddCommand(peekMessagesCmd)
	rootCmd.AddCommand(startConsumerCmd)
	rootCmd.AddCommand(listExchangesCmd)
	rootCmd.AddCommand(createExchangeCmd)
	rootCmd.AddCommand(deleteExchangeCmd)
	rootCmd.AddCommand(bindQueueCmd)
	rootCmd.AddCommand(unbindQueueCmd)
	rootCmd.AddCommand(listBindingsCmd)
	rootCmd.AddCommand(publishCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func queueName(cmd *cobra.Command) string {
	name, _ := cmd.Flags().GetString("queue-name")
	if name == "" {
		log.Fatal("please provide queue name")
	}
	return name
}

func exchangeName(cmd *cobra.Command) string {
	name, _ := cmd.Flags().GetString("exchange-name")
	if name == "" {
		log.Fatal("please provide exchange name")
	}
	return name
}

var listQueuesCmd = &cobra.Command{
	Use:   "list-queues",
	Short: "List all queues",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := requestContext()
		defer cancel()

		queues, err := mqClient.ListQueues(ctx)
		if err != nil {
			log.Fatal("error while listing queues ", err.Error())
		}
		for _, q := range queues {
			log.Printf("%s %s messages=%d", q.GetVhost(), q.GetName(), q.GetMessages())
		}
	},
}

var createQueueCmd = &cobra.Command{
	Use:   "create-queue",
	Short: "Create a new queue",
	Run: func(cmd *cobra.Command, args []string) {
		name := queueName(cmd)
		ctx, cancel := requestContext()
		defer cancel()

		q, err := mqClient.CreateQueue(ctx, name)
		if err != nil {
			log.Fatal("error while creating queue ", err.Error())
		}
		log.Printf("queue %s created in vhost %s", q.GetName(), q.GetVhost())
	},
}

var deleteQueueCmd = &cobra.Command{
	Use:   "delete-queue",
	Short: "Delete a queue and its messages",
	Run: func(cmd *cobra.Command, args []string) {
		name := queueName(cmd)
		ctx, cancel := requestContext()
		defer cancel()

		if err := mqClient.DeleteQueue(ctx, name); err != nil {
			log.Fatal("error while deleting queue ", err.Error())
		}
		log.Printf("queue %s deleted", name)
	},
}

var countMessagesCmd = &cobra.Command{
	Use:   "count-messages",
	Short: "Count messages in a queue",
	Run: func(cmd *cobra.Command, args []string) {
		name := queueName(cmd)
		ctx, cancel := requestContext()
		defer cancel()

		count, err := mqClient.CountMessages(ctx, name)
		if err != nil {
			log.Fatal("error while counting messages ", err.Error())
		}
		log.Printf("queue %s has %d messages", name, count)
	},
}

var consumeMessageCmd = &cobra.Command{
	Use:   "consume-message",
	Short: "Consume one message from a queue",
	Run: func(cmd *cobra.Command, args []string) {
		name := queueName(cmd)
		ctx, cancel := requestContext()
		defer cancel()

		msg, ok, err := mqClient.ConsumeMessage(ctx, name)
		if err != nil {
			log.Fatal("error while consuming message ", err.Error())
		}
		if !ok {
			log.Printf("queue %s is empty", name)
			return
		}
		log.Printf("message %s: %s", msg.GetId(), string(msg.GetPayload()))
	},
}

var publishMessageCmd = &cobra.Command{
	Use:   "publish-message",
	Short: "Publish a message to a queue",
	Run: func(cmd *cobra.Command, args []string) {
		name := queueName(cmd)
		message, _ := cmd.Flags().GetString("message")
		if message == "" {
			log.Fatal("please provide message")
		}
		ctx, cancel := requestContext()
		defer cancel()

		msg, err := mqClient.PublishMessage(ctx, name, []byte(message))
		if err != nil {
			log.Fatal("error while publishing message ", err.Error())
		}
		log.Printf("message %s published to queue %s", msg.GetId(), name)
	},
}

var peekMessagesCmd = &cobra.Command{
	Use:   "peek-messages",
	Short: "Read messages from the head of a queue without removing them",
	Run: func(cmd *cobra.Command, args []string) {
		name := queueName(cmd)
		count, _ := cmd.Flags().GetInt("message-count")
		if count <= 0 {
			log.Fatal("please provide valid message count(>0)")
		}
		ctx, cancel := requestContext()
		defer cancel()

		msgs, err := mqClient.PeekMessages(ctx, name, count)
		if err != nil {
			log.Fatal("error while peeking messages ", err.Error())
		}
		for _, msg := range msgs {
			log.Printf("%d %s: %s", msg.GetSeq(), msg.GetId(), string(msg.GetPayload()))
		}
	},
}

var startConsumerCmd = &cobra.Command{
	Use:   "start-consumer",
	Short: "Poll a queue and print messages until interrupted",
	Run: func(cmd *cobra.Command, args []string) {
		name := queueName(cmd)
		interval, _ := cmd.Flags().GetDuration("interval")
		if interval <= 0 {
			log.Fatal("please provide valid poll interval(>0)")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			// drain everything that is ready before waiting again
			for {
				msg, ok, err := mqClient.ConsumeMessage(ctx, name)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					log.Fatal("error while consuming message ", err.Error())
				}
				if !ok {
					break
				}
				log.Printf("message %s: %s", msg.GetId(), string(msg.GetPayload()))
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	},
}

var listExchangesCmd = &cobra.Command{
	Use:   "list-exchanges",
	Short: "List all exchanges",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := requestContext()
		defer cancel()

		exchanges, err := mqClient.ListExchanges(ctx)
		if err != nil {
			log.Fatal("error while listing exchanges ", err.Error())
		}
		for _, x := range exchanges {
			log.Printf("%s %s type=%s", x.GetVhost(), x.GetName(), x.GetType())
		}
	},
}

var createExchangeCmd = &cobra.Command{
	Use:   "create-exchange",
	Short: "Declare a direct or fanout exchange",
	Run: func(cmd *cobra.Command, args []string) {
		name := exchangeName(cmd)
		kind, _ := cmd.Flags().GetString("exchange-type")
		ctx, cancel := requestContext()
		defer cancel()

		x, err := mqClient.CreateExchange(ctx, name, kind)
		if err != nil {
			log.Fatal("error while creating exchange ", err.Error())
		}
		log.Printf("%s exchange %s created in vhost %s", x.GetType(), x.GetName(), x.GetVhost())
	},
}

var deleteExchangeCmd = &cobra.Command{
	Use:   "delete-exchange",
	Short: "Delete an exchange and its bindings",
	Run: func(cmd *cobra.Command, args []string) {
		name := exchangeName(cmd)
		ctx, cancel := requestContext()
		defer cancel()

		if err := mqClient.DeleteExchange(ctx, name); err != nil {
			log.Fatal("error while deleting exchange ", err.Error())
		}
		log.Printf("exchange %s deleted", name)
	},
}

var bindQueueCmd = &cobra.Command{
	Use:   "bind-queue",
	Short: "Bind a queue to an exchange",
	Run: func(cmd *cobra.Command, args []string) {
		exchange := exchangeName(cmd)
		queue := queueName(cmd)
		key, _ := cmd.Flags().GetString("routing-key")
		ctx, cancel := requestContext()
		defer cancel()

		if err := mqClient.BindQueue(ctx, exchange, queue, key); err != nil {
			log.Fatal("error while binding queue ", err.Error())
		}
		log.Printf("queue %s bound to exchange %s with key %q", queue, exchange, key)
	},
}

var unbindQueueCmd = &cobra.Command{
	Use:   "unbind-queue",
	Short: "Remove a binding between a queue and an exchange",
	Run: func(cmd *cobra.Command, args []string) {
		exchange := exchangeName(cmd)
		queue := queueName(cmd)
		key, _ := cmd.Flags().GetString("routing-key")
		ctx, cancel := requestContext()
		defer cancel()

		if err := mqClient.UnbindQueue(ctx, exchange, queue, key); err != nil {
			log.Fatal("error while unbinding queue ", err.Error())
		}
		log.Printf("queue %s unbound from exchange %s", queue, exchange)
	},
}

var listBindingsCmd = &cobra.Command{
	Use:   "list-bindings",
	Short: "List the bindings of an exchange",
	Run: func(cmd *cobra.Command, args []string) {
		exchange, _ := cmd.Flags().GetString("exchange-name")
		ctx, cancel := requestContext()
		defer cancel()

		bindings, err := mqClient.ListBindings(ctx, exchange)
		if err != nil {
			log.Fatal("error while listing bindings ", err.Error())
		}
		for _, b := range bindings {
			log.Printf("%s -> %s key=%q", b.GetExchange(), b.GetQueue(), b.GetRoutingKey())
		}
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a message through an exchange",
	Run: func(cmd *cobra.Command, args []string) {
		exchange, _ := cmd.Flags().GetString("exchange-name")
		key, _ := cmd.Flags().GetString("routing-key")
		message, _ := cmd.Flags().GetString("message")
		if message == "" {
			log.Fatal("please provide message")
		}
		ctx, cancel := requestContext()
		defer cancel()

		routed, err := mqClient.Publish(ctx, exchange, key, []byte(message))
		if err != nil {
			log.Fatal("error while publishing message ", err.Error())
		}
		if len(routed) == 0 {
			log.Printf("message was not routed to any queue")
			return
		}
		for _, r := range routed {
			log.Printf("message %s published to queue %s", r.GetMessage().GetId(), r.GetQueue())
		}
	},
}

func init() {
	createQueueCmd.Flags().StringP("queue-name", "q", "", "Name of the queue")

	deleteQueueCmd.Flags().StringP("queue-name", "q", "", "Name of the queue")

	countMessagesCmd.Flags().StringP("queue-name", "q", "", "Name of the queue")

	consumeMessageCmd.Flags().StringP("queue-name", "q", "", "Name of the queue")

	publishMessageCmd.Flags().StringP("queue-name", "q", "", "Name of the queue")
	publishMessageCmd.Flags().StringP("message", "m", "", "Message payload")

	peekMessagesCmd.Flags().StringP("queue-name", "q", "", "Name of the queue")
	peekMessagesCmd.Flags().IntP("message-count", "c", 1, "Number of messages to read")

	startConsumerCmd.Flags().StringP("queue-name", "q", "", "Name of the queue")
	startConsumerCmd.Flags().DurationP("interval", "i", time.Second, "Poll interval when the queue is empty")

	createExchangeCmd.Flags().StringP("exchange-name", "e", "", "Name of the exchange")
	createExchangeCmd.Flags().StringP("exchange-type", "t", "direct", "Type of the exchange (direct or fanout)")

	deleteExchangeCmd.Flags().StringP("exchange-name", "e", "", "Name of the exchange")

	bindQueueCmd.Flags().StringP("exchange-name", "e", "", "Name of the exchange")
	bindQueueCmd.Flags().StringP("queue-name", "q", "", "Name of the queue")
	bindQueueCmd.Flags().StringP("routing-key", "k", "", "Routing key of the binding")

	unbindQueueCmd.Flags().StringP("exchange-name", "e", "", "Name of the exchange")
	unbindQueueCmd.Flags().StringP("queue-name", "q", "", "Name of the queue")
	unbindQueueCmd.Flags().StringP("routing-key", "k", "", "Routing key of the binding")

	listBindingsCmd.Flags().StringP("exchange-name", "e", "", "Name of the exchange, empty for the default exchange")

	publishCmd.Flags().StringP("exchange-name", "e", "", "Name of the exchange, empty for the default exchange")
	publishCmd.Flags().StringP("routing-key", "k", "", "Routing key of the message")
	publishCmd.Flags().StringP("message", "m", "", "Message payload")
}
