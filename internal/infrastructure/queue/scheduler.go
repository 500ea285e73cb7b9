package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"library-service/internal/config"
	bookjob "library-service/internal/domains/book/job"
	"library-service/internal/shared"
	"library-service/pkg/logger"
)

// Scheduler owns the periodic task registrations. It only enqueues;
// execution happens in the worker's asynq server.
type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisOpt asynq.RedisConnOpt, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

// RegisterJobs registers all periodic tasks.
func (s *Scheduler) RegisterJobs() error {
	return s.registerArchiveOutdatedBooksJob()
}

// Archival runs every ArchiveInterval (30 minutes by default). A missed
// tick is not backfilled, and a run that is still queued when 20 minutes
// have passed expires instead of piling up behind the next tick.
// Overlapping runs are harmless: the bulk predicate depends only on
// stored state, so a second run archives nothing extra.
func (s *Scheduler) registerArchiveOutdatedBooksJob() error {
	task, err := bookjob.NewArchiveTask(s.jobConfig.ArchiveYears)
	if err != nil {
		return err
	}

	_, err = s.scheduler.Register(
		fmt.Sprintf("@every %s", s.jobConfig.ArchiveInterval),
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(0),
		asynq.Timeout(20*time.Minute),
	)
	if err != nil {
		logger.Error("failed to register archive job", err)
		return err
	}

	logger.Info("registered archive job", map[string]interface{}{
		"interval": s.jobConfig.ArchiveInterval.String(),
		"years":    s.jobConfig.ArchiveYears,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
