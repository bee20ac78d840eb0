package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/floramajestyc/catalog-service/internal/cart"
	"github.com/floramajestyc/catalog-service/internal/catalog"
	"github.com/floramajestyc/catalog-service/internal/clientlist"
	"github.com/floramajestyc/catalog-service/internal/config"
	"github.com/floramajestyc/catalog-service/internal/httpx"
	kafkax "github.com/floramajestyc/catalog-service/internal/kafka"
	"github.com/floramajestyc/catalog-service/internal/postgres"
	"github.com/floramajestyc/catalog-service/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producers, one per topic
	orderProd := kafkax.NewProducer(cfg.KafkaBrokers, catalog.TopicOrderSubmitted, 1024)
	orderProd.Start(ctx)
	listProd := kafkax.NewProducer(cfg.KafkaBrokers, catalog.TopicPriceListShared, 1024)
	listProd.Start(ctx)
	publishProd := kafkax.NewProducer(cfg.KafkaBrokers, catalog.TopicClientListPublished, 1024)
	publishProd.Start(ctx)

	// Stores & publisher
	repo := &catalog.Repo{DB: db}
	carts := &cart.RedisStore{Client: rdb}
	publisher := &clientlist.Publisher{
		Store:   &clientlist.RedisStore{Client: rdb},
		BaseURL: cfg.BaseURL,
	}

	// Router & handlers
	router := httpx.NewRouter()
	ch := &httpx.CatalogHandler{
		Repo:     repo,
		Producer: listProd,
		Service:  cfg.ServiceName,
		Phone:    cfg.WhatsAppPhone,
		Language: cfg.DefaultLanguage,
	}
	ch.Register(router)
	lh := &httpx.ClientListHandler{
		Catalog:   repo,
		Publisher: publisher,
		Producer:  publishProd,
		Service:   cfg.ServiceName,
		Language:  cfg.DefaultLanguage,
	}
	lh.Register(router)
	crh := &httpx.CartHandler{
		Store:    carts,
		Catalog:  repo,
		Lists:    publisher,
		Producer: orderProd,
		Service:  cfg.ServiceName,
		Phone:    cfg.WhatsAppPhone,
	}
	crh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	// flush queued events, then stop the producer loops
	orderProd.Close()
	listProd.Close()
	publishProd.Close()
	cancel()
	orderProd.WaitClosed()
	listProd.WaitClosed()
	publishProd.WaitClosed()
}
