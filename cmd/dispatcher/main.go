package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/floramajestyc/catalog-service/internal/catalog"
	"github.com/floramajestyc/catalog-service/internal/config"
	"github.com/floramajestyc/catalog-service/internal/dispatch"
	kafkax "github.com/floramajestyc/catalog-service/internal/kafka"
	"github.com/floramajestyc/catalog-service/internal/redisx"
)

// logOpener is the messaging-channel hand-off: the deep link is emitted and
// nothing is awaited.
type logOpener struct{}

func (logOpener) OpenExternalLink(url string) {
	log.Printf("open external link: %s", url)
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &dispatch.Service{
		Dedup:  &dispatch.RedisDedup{Client: rdb, Service: cfg.ServiceName + "-dispatcher"},
		Opener: logOpener{},
	}

	group := getenv("DISPATCHER_GROUP", "catalog-dispatcher")
	workers := mustAtoi(os.Getenv("DISPATCHER_WORKERS"), "4")

	orders := kafkax.NewConsumer(cfg.KafkaBrokers, group, catalog.TopicOrderSubmitted, workers)
	lists := kafkax.NewConsumer(cfg.KafkaBrokers, group, catalog.TopicPriceListShared, workers)

	go func() {
		log.Printf("order consumer started: group=%s topic=%s workers=%d", group, catalog.TopicOrderSubmitted, workers)
		if err := orders.Start(ctx, svc.HandleOrderSubmitted); err != nil {
			log.Printf("order consumer exit: %v", err)
			cancel()
		}
	}()
	go func() {
		log.Printf("price-list consumer started: group=%s topic=%s workers=%d", group, catalog.TopicPriceListShared, workers)
		if err := lists.Start(ctx, svc.HandlePriceListShared); err != nil {
			log.Printf("price-list consumer exit: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Println("shutting down dispatcher...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}
