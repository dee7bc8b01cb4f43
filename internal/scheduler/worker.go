package scheduler

import (
	"context"
	"errors"
	"fmt"

	"listing_backend/internal/events"
	"listing_backend/internal/leads/repository"
	leadservice "listing_backend/internal/leads/service"
	"listing_backend/platform/config"
	"listing_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// LeadReader loads the lead a task refers to.
type LeadReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (repository.Lead, error)
}

// LeadNotifier delivers the post-submission emails.
type LeadNotifier interface {
	NotifyLead(ctx context.Context, e events.LeadSubmitted) error
}

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, leads LeadReader, notifier LeadNotifier, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg): 1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)
			log.Error("task failed", "task", task.Type(), "retry", retried, "maxRetry", maxRetry, "error", err)
		}),
	})

	mux := asynq.NewServeMux()
	mux.Handle(TaskLeadNotify, &leadNotifyHandler{leads: leads, notifier: notifier, log: log})

	return &Worker{
		server: server,
		mux:    mux,
		log:    log,
	}, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

type leadNotifyHandler struct {
	leads    LeadReader
	notifier LeadNotifier
	log      *logger.Logger
}

func (h *leadNotifyHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseLeadNotifyPayload(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	leadID, err := uuid.Parse(payload.LeadID)
	if err != nil {
		return fmt.Errorf("%w: invalid lead id %q", asynq.SkipRetry, payload.LeadID)
	}

	lead, err := h.leads.GetByID(ctx, leadID)
	if errors.Is(err, repository.ErrNotFound) {
		h.log.Warn("lead for notification no longer exists", "leadId", leadID)
		return nil
	}
	if err != nil {
		return err
	}

	return h.notifier.NotifyLead(ctx, leadservice.LeadSubmittedEvent(lead))
}
