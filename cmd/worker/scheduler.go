package main

import (
	"log"

	"github.com/hibiken/asynq"

	"library-service/internal/config"
	"library-service/internal/infrastructure/queue"
)

// asynqScheduler wraps queue.Scheduler with startup and shutdown logging.
type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler creates the scheduler and registers periodic jobs.
func setupScheduler(cfg *config.Config) *asynqScheduler {
	redisOpt, err := asynq.ParseRedisURI(cfg.Broker.URL)
	if err != nil {
		log.Fatalf("[Scheduler] Invalid broker URL: %v", err)
	}

	scheduler := queue.NewScheduler(redisOpt, cfg.Job)

	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

// Shutdown gracefully shuts down the scheduler.
func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] Stopped")
}
