package messagestream

import (
	"fmt"

	"railway-reservation/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type MessageStream interface {
	NewPublisher() (message.Publisher, error)
	NewSubscriber() (message.Subscriber, error)
}

type ampq struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig, logger watermill.LoggerAdapter) MessageStream {
	return &ampq{
		cfg:    amqp.NewDurableQueueConfig(cfg.URL),
		logger: logger,
	}
}

func (a *ampq) NewPublisher() (message.Publisher, error) {
	publisher, err := amqp.NewPublisher(a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create amqp publisher: %w", err)
	}
	return publisher, nil
}

func (a *ampq) NewSubscriber() (message.Subscriber, error) {
	subscriber, err := amqp.NewSubscriber(a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create amqp subscriber: %w", err)
	}
	return subscriber, nil
}

// inProcess hands out the same gochannel pubsub as publisher and subscriber.
type inProcess struct {
	pubSub *gochannel.GoChannel
}

func NewGoChannel(logger watermill.LoggerAdapter) MessageStream {
	return &inProcess{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger),
	}
}

func (g *inProcess) NewPublisher() (message.Publisher, error) {
	return g.pubSub, nil
}

func (g *inProcess) NewSubscriber() (message.Subscriber, error) {
	return g.pubSub, nil
}

func New(cfg *config.MessageStreamConfig, logger watermill.LoggerAdapter) MessageStream {
	if cfg.Driver == config.StreamAMQP {
		return NewAmpq(cfg, logger)
	}
	return NewGoChannel(logger)
}

// NewRouter subscribes handlerFunc to topic. Messages the handler rejects are
// forwarded to poisonTopic.
func NewRouter(publisher message.Publisher, poisonTopic, handlerName, topic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc, logger watermill.LoggerAdapter) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonTopic)
	if err != nil {
		return nil, fmt.Errorf("create poison queue: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer, poisonQueue)
	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
