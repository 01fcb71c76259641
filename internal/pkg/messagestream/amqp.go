package messagestream

import (
	"fmt"

	"homezy-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	TopicBookListing   = "book_listing"
	TopicSendEmail     = "send_email"
	TopicPoisonedQueue = "poisoned_queue"
)

type Amqp struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig, logger watermill.LoggerAdapter) *Amqp {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	amqpCfg := amqp.NewDurableQueueConfig(uri)
	if cfg.ExchangeName != "" {
		amqpCfg.Exchange.GenerateName = func(topic string) string {
			return cfg.ExchangeName
		}
		amqpCfg.Exchange.Type = "direct"
		amqpCfg.Exchange.Durable = true
	}

	return &Amqp{cfg: amqpCfg, logger: logger}
}

func (a *Amqp) NewSubscriber() (message.Subscriber, error) {
	return amqp.NewSubscriber(a.cfg, a.logger)
}

func (a *Amqp) NewPublisher() (message.Publisher, error) {
	return amqp.NewPublisher(a.cfg, a.logger)
}
