package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"library-service/internal/config"
)

// startServices verifies the broker is reachable and exposes the
// worker's own health endpoint. The broker check is fatal: a worker
// that cannot reach its broker will never receive a task.
func startServices(cfg *config.Config) error {
	log.Println("[Startup] Library worker starting...")

	if err := checkBroker(cfg.Broker.URL); err != nil {
		return fmt.Errorf("broker check failed: %w", err)
	}
	log.Println("[Startup] Broker: OK")

	go startHealthCheckServer()

	return nil
}

func checkBroker(url string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}

	client := redis.NewClient(opts)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.Ping(ctx).Err()
}

// startHealthCheckServer serves liveness and readiness probes.
func startHealthCheckServer() {
	http.HandleFunc("/health", healthCheckHandler)
	http.HandleFunc("/ready", readyCheckHandler)

	log.Println("[Health] Starting health check server on :9999")
	if err := http.ListenAndServe(":9999", nil); err != nil {
		log.Printf("[Health] Failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"UP","service":"library-worker"}`))
}

func readyCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"READY"}`))
}
