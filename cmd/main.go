package main

import (
	"context"
	"log"
	"time"

	"homezy-service/config"
	bookingHandler "homezy-service/internal/module/booking/handler"
	bookingRepositories "homezy-service/internal/module/booking/repositories"
	bookingUsecases "homezy-service/internal/module/booking/usecases"
	calendarHandler "homezy-service/internal/module/calendar/handler"
	calendarRepositories "homezy-service/internal/module/calendar/repositories"
	calendarUsecases "homezy-service/internal/module/calendar/usecases"
	mailerHandler "homezy-service/internal/module/mailer/handler"
	mailerRepositories "homezy-service/internal/module/mailer/repositories"
	mailerUsecases "homezy-service/internal/module/mailer/usecases"
	payoutHandler "homezy-service/internal/module/payout/handler"
	payoutRepositories "homezy-service/internal/module/payout/repositories"
	payoutUsecases "homezy-service/internal/module/payout/usecases"
	"homezy-service/internal/pkg/authprovider"
	"homezy-service/internal/pkg/database"
	"homezy-service/internal/pkg/http"
	"homezy-service/internal/pkg/httpclient"
	log_internal "homezy-service/internal/pkg/log"
	"homezy-service/internal/pkg/messagestream"
	"homezy-service/internal/pkg/middleware"
	"homezy-service/internal/pkg/redis"
	"homezy-service/internal/pkg/scheduler"
	router "homezy-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const lockExpiry = 10 * time.Second

func main() {
	cfg := config.InitConfig()

	app, messageRouters, s := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start scheduler
	go s.run(cfg)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)

	if err := s.client.Close(); err != nil {
		log.Printf("error close scheduler client: %v", err)
	}
}

type schedulerService struct {
	scheduler *scheduler.Scheduler
	client    *asynq.Client
	handler   *bookingHandler.BookingHandler
}

func (s *schedulerService) run(cfg *config.Config) {
	go s.scheduler.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)
	go s.scheduler.StartPeriodic(&cfg.Redis, cfg.Scheduler.OutboxRedispatch, scheduler.TypeOutboxRedispatch)

	s.scheduler.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
		[]string{scheduler.TypeMarkGuestNotificationsRead, scheduler.TypeOutboxRedispatch},
		[]func(ctx context.Context, t *asynq.Task) error{s.handler.MarkGuestNotificationsRead, s.handler.RedispatchOutbox},
	)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *schedulerService) {

	// init logger
	logZap := log_internal.SetupLogger()
	logger := otelzap.New(logZap, otelzap.WithMinLevel(zapcore.InfoLevel))
	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	locker := redis.NewLocker(redisClient, lockExpiry)
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	auth := authprovider.New(&cfg.AuthProvider, httpClient)

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream, messagestream.NewZapAdapter(logZap))

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logZap.Fatal("Failed to create subscriber", zap.Error(err))
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logZap.Fatal("Failed to create publisher", zap.Error(err))
	}

	// init scheduler
	sch := &scheduler.Scheduler{Log: logger}
	asynqClient := sch.InitClient(&cfg.Redis)

	validator := validator.New()

	mailerRepo := mailerRepositories.New(&cfg.Mail, logger, httpClient, auth)
	mailerUsecase := mailerUsecases.New(mailerRepo, logger)
	mailHandler := mailerHandler.MailHandler{
		Log:       logger,
		Validator: validator,
		Usecase:   mailerUsecase,
	}

	bookingRepo := bookingRepositories.New(db, logger, locker)
	bookingUsecase := bookingUsecases.New(bookingRepo, logger, publisher, scheduler.NewEnqueuer(asynqClient), mailerUsecase, cfg.Scheduler.MarkReadDelay,
		bookingUsecases.WithOutboxMaxAttempts(cfg.Scheduler.OutboxMaxAttempts),
	)
	bookingH := bookingHandler.BookingHandler{
		Log:       logger,
		Validator: validator,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	calendarRepo := calendarRepositories.New(db, logger)
	calendarH := calendarHandler.CalendarHandler{
		Log:     logger,
		Usecase: calendarUsecases.New(calendarRepo, logger, time.Now),
	}

	payoutRepo := payoutRepositories.New(&cfg.PayPal, db, logger, httpClient)
	payoutH := payoutHandler.PayoutHandler{
		Log:       logger,
		Validator: validator,
		Usecase:   payoutUsecases.New(payoutRepo, logger),
	}

	m := middleware.Middleware{
		Log:  logger,
		Auth: auth,
	}

	var messageRouters []*message.Router
	watermillLogger := messagestream.NewZapAdapter(logZap)

	consumeBookingQueueRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisonedQueue, "book_listing_handler", messagestream.TopicBookListing, subscriber, bookingH.ConsumeBookingQueue, watermillLogger, cfg.MessageStream.MaxRetries)
	if err != nil {
		logZap.Fatal("Failed to create consume_booking_queue router", zap.Error(err))
	}

	consumeSendEmailRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisonedQueue, "send_email_handler", messagestream.TopicSendEmail, subscriber, bookingH.ConsumeSendEmail, watermillLogger, cfg.MessageStream.MaxRetries)
	if err != nil {
		logZap.Fatal("Failed to create consume_send_email router", zap.Error(err))
	}

	messageRouters = append(messageRouters, consumeBookingQueueRouter, consumeSendEmailRouter)

	serverHttp := http.SetupHttpEngine(&cfg.HttpServer)

	r := router.Initialize(serverHttp, router.Handlers{
		Booking:  &bookingH,
		Calendar: &calendarH,
		Mailer:   &mailHandler,
		Payout:   &payoutH,
	}, &m)

	return r, messageRouters, &schedulerService{scheduler: sch, client: asynqClient, handler: &bookingH}

}
