package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GasparCoquet/limit-order-book-go/internal/app/engine"
	"github.com/GasparCoquet/limit-order-book-go/internal/config"
	"github.com/GasparCoquet/limit-order-book-go/internal/domain/orderbook"
	egresskafka "github.com/GasparCoquet/limit-order-book-go/internal/egress/kafka"
	ingresskafka "github.com/GasparCoquet/limit-order-book-go/internal/ingress/kafka"
	"github.com/GasparCoquet/limit-order-book-go/internal/snapshot"
	"github.com/GasparCoquet/limit-order-book-go/pkg/logger"
	"github.com/GasparCoquet/limit-order-book-go/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	config.MustLoad(cfg)

	l, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	redisConfig := redis.DefaultConfig()
	redisConfig.Addrs = cfg.Redis.Addrs
	redisConfig.Password = cfg.Redis.Password
	redisConfig.Username = cfg.Redis.Username
	redisConfig.DB = cfg.Redis.DB
	rclient := redis.NewClient(log, redisConfig)

	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "connect_redis"})
		return
	}

	reader := ingresskafka.NewReader(cfg.Kafka, log)
	writer := egresskafka.NewWriter(cfg.Kafka, log)
	store := snapshot.NewStore(rclient, cfg.Instrument, log)

	opts := &engine.Options{
		SnapshotInterval:    cfg.Snapshot.Interval,
		SnapshotOffsetDelta: cfg.Snapshot.OffsetDelta,
	}
	app := engine.NewEngine(orderbook.NewEngine(), reader, store, writer, log, cfg.Instrument, opts)

	if err := app.LoadSnapshot(ctx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "load_snapshot"})
		return
	}

	go func() {
		if err := app.Run(ctx); err != nil {
			log.Error(err, logger.Field{Key: "action", Value: "run_engine"})
		}
	}()

	log.Info("matching engine started", logger.Field{Key: "instrument", Value: cfg.Instrument})

	sig := <-sigChan
	log.Info("received shutdown signal", logger.Field{Key: "signal", Value: sig.String()})

	cancel()
	if err := app.Close(); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "close_engine"})
	}

	log.Info("matching engine shutdown complete")
}
