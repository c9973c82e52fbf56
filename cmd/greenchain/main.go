package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v3"

	"greenchain/internal/api"
	"greenchain/internal/catalog"
	"greenchain/internal/database"
	"greenchain/internal/farm"
	"greenchain/internal/ledger"
	"greenchain/internal/monitoring"
	"greenchain/internal/session"
	"greenchain/internal/trace"
)

var (
	port        = flag.Int("port", 8080, "API server port")
	metricsPort = flag.Int("metrics-port", 9090, "Metrics server port")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := database.Open(config.Database.Dialect, config.Database.Source)
	if err != nil {
		log.Fatalf("Failed to open order store: %v", err)
	}
	defer store.Close()

	generator := farm.NewGenerator(rand.NewSource(time.Now().UnixNano()))
	products := catalog.NewCatalog()
	monitor := monitoring.NewMonitor()
	collector := monitoring.NewCollector()
	tracer := trace.NewService(time.Duration(config.Simulation.LookupLatencyMs) * time.Millisecond)
	auth := session.NewAuthenticator(config.JWTSecret, time.Duration(config.SessionTTLHours)*time.Hour)
	sessions := session.NewRegistry(func() *ledger.Ledger {
		return ledger.New(products, store)
	})

	server := api.NewFarmAPI(generator, products, sessions, auth, tracer, monitor, collector,
		time.Duration(config.Stream.IntervalSeconds)*time.Second)

	if config.Metrics.Enabled {
		go startMetricsServer(*metricsPort, collector)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: server.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", *port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// Config represents the application configuration
type Config struct {
	JWTSecret       string `yaml:"jwt_secret"`
	SessionTTLHours int    `yaml:"session_ttl_hours"`
	Database        struct {
		Dialect string `yaml:"dialect"`
		Source  string `yaml:"source"`
	} `yaml:"database"`
	Stream struct {
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"stream"`
	Simulation struct {
		LookupLatencyMs int `yaml:"lookup_latency_ms"`
	} `yaml:"simulation"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

func loadConfig(path string) (*Config, error) {
	config := &Config{}
	config.JWTSecret = "greenchain-dev-secret"
	config.SessionTTLHours = 24
	config.Database.Dialect = "sqlite3"
	config.Database.Source = "greenchain.db"
	config.Stream.IntervalSeconds = 5
	config.Simulation.LookupLatencyMs = 1000
	config.Metrics.Enabled = true

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config file %s not found, using defaults", path)
			return config, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return config, nil
}

func startMetricsServer(port int, collector *monitoring.Collector) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}))

	log.Printf("Starting metrics server on port %d", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		log.Printf("Metrics server error: %v", err)
	}
}
