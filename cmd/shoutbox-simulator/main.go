package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tradeboard/internal/config"
	"tradeboard/internal/pkg"
	"tradeboard/internal/repository/sqldb"
	"tradeboard/internal/simulator"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	logger, err := pkg.NewLogger("shoutbox_simulator.log")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := sqldb.Open(cfg.Database)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	producer := pkg.NewActivityProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer producer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.NewShoutboxSimulator(db, producer, logger)
	if err := sim.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("simulator crashed", zap.Error(err))
	}
}
