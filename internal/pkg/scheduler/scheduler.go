package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"homezy-service/config"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	TypeMarkGuestNotificationsRead = "guest_notifications:mark_read"
	TypeOutboxRedispatch           = "outbox:redispatch"
)

type Scheduler struct {
	Log *otelzap.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	mux := http.NewServeMux()
	mux.Handle(h.RootPath()+"/", h)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		s.Log.Error("error start monitoring scheduler", zap.Error(err))
	}
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

// StartHandler blocks serving the given task types.
func (s *Scheduler) StartHandler(cfg *config.RedisConfig, concurrency int, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error("error start handler scheduler", zap.Error(err))
	}
}

// StartPeriodic blocks enqueuing taskType on the cron spec (e.g. "@every 1m").
func (s *Scheduler) StartPeriodic(cfg *config.RedisConfig, cronspec string, taskType string) {
	sch := asynq.NewScheduler(redisOpt(cfg), &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := sch.Register(cronspec, asynq.NewTask(taskType, nil), asynq.Unique(time.Minute)); err != nil {
		s.Log.Error("error register periodic task", zap.String("task", taskType), zap.Error(err))
		return
	}
	if err := sch.Run(); err != nil {
		s.Log.Error("error start periodic scheduler", zap.Error(err))
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}

// Enqueuer is the part of asynq the usecases depend on.
type Enqueuer interface {
	EnqueueIn(ctx context.Context, taskType string, payload []byte, delay time.Duration) error
}

type asynqEnqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) Enqueuer {
	return &asynqEnqueuer{client: client}
}

func (e *asynqEnqueuer) EnqueueIn(ctx context.Context, taskType string, payload []byte, delay time.Duration) error {
	_, err := e.client.EnqueueContext(ctx, asynq.NewTask(taskType, payload), asynq.ProcessIn(delay))
	return err
}
