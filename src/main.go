package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	_ "time/tzdata"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-pulsar/pkg/pulsar"
	pulsarClient "github.com/apache/pulsar-client-go/pulsar"
	"github.com/gammazero/workerpool"
	"github.com/joho/godotenv"
	"github.com/mmfl-dev/admin-api/src/environment"
	"github.com/mmfl-dev/admin-api/src/events"
	"github.com/mmfl-dev/admin-api/src/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	mainContext, cancel := context.WithCancel(context.Background())
	err := godotenv.Load()
	if err != nil && !strings.Contains(err.Error(), "no such file") {
		log.Fatal().Err(err).Msg("Error loading .env file")
	}

	env := environment.Get()

	wp := workerpool.New(env.WorkerCount)

	// Change-event publishing is optional; without a pulsar URL writes are
	// simply not announced.
	var publisher *events.Publisher
	if env.PulsarURL != "" {
		conn, err := pulsarClient.NewClient(pulsarClient.ClientOptions{
			URL:            env.PulsarURL,
			Authentication: env.PulsarAuth,
		})
		if err != nil {
			cancel()
			log.Fatal().Err(errors.New("cannot connect to pulsar")).Msg("Error creating pulsar client")
		}

		changePublisher, err := pulsar.NewPublisherWithPulsarClient(
			conn,
			watermill.NewStdLoggerWithOut(log.Logger, zerolog.GlobalLevel() <= zerolog.DebugLevel, zerolog.GlobalLevel() == zerolog.TraceLevel),
		)
		if err != nil {
			cancel()
			log.Fatal().Err(err).Msg("Error creating change publisher")
		}
		publisher = events.NewPublisher(changePublisher, env.PulsarBaseTopic)
	}

	srv, err := server.NewServer(mainContext, env, publisher, wp)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Error creating server")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, os.Kill, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
		if err := srv.Stop(); err != nil {
			log.Error().Err(err).Msg("Error stopping server")
		}
	}()

	err = srv.Start()
	if err != nil {
		log.Fatal().Err(err).Msg("Error starting server")
	}
}
