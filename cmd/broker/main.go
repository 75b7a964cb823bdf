package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrelcunha/ottermq/internal/broker"
	"github.com/andrelcunha/ottermq/internal/config"
	"github.com/andrelcunha/ottermq/pkg/server"
	"github.com/andrelcunha/ottermq/web"
)

func main() {
	config := config.LoadConfig()

	persister, err := broker.OpenPersister(config)
	if err != nil {
		log.Fatal(err.Error())
	}

	b := broker.NewBroker(config, persister)
	if err := b.Restore(); err != nil {
		log.Fatal(err.Error())
	}
	defer func() {
		if err := b.Close(); err != nil {
			log.Printf("error closing broker: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)

	grpcAddr := fmt.Sprintf("%s:%s", config.BrokerHost, config.BrokerPort)
	go func() {
		log.Printf("starting broker server at %s...\n", grpcAddr)
		errCh <- server.New(b).ListenAndServe(ctx, grpcAddr)
	}()

	webAddr := fmt.Sprintf("%s:%s", config.WebHost, config.WebPort)
	go func() {
		log.Printf("starting web server at %s...\n", webAddr)
		errCh <- web.NewWebServer(b).ListenAndServe(ctx, webAddr)
	}()

	pending := 2
	select {
	case <-ctx.Done():
		log.Println("shutting down broker...")
	case err := <-errCh:
		log.Printf("server stopped: %v", err)
		pending--
		stop()
	}

	for ; pending > 0; pending-- {
		if err := <-errCh; err != nil {
			log.Printf("server stopped: %v", err)
		}
	}
}
