package nsq

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nsqio/go-nsq"

	"github.com/piresc/sitetrack/internal/pkg/logger"
)

// ErrPermanent marks a message that will never succeed, e.g. malformed JSON.
// Handlers wrap it so the message is finished instead of requeued.
var ErrPermanent = errors.New("permanent message failure")

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
	topic    string
}

// NewConsumer creates a new NSQ consumer for a topic/channel. Call
// ConnectToNSQD or ConnectToLookupd afterwards to start receiving.
func NewConsumer(topic, channel string, maxAttempts uint16, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	if maxAttempts > 0 {
		config.MaxAttempts = maxAttempts
	}

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)
	consumer.AddHandler(wrapHandler(topic, handler))

	return &Consumer{consumer: consumer, topic: topic}, nil
}

func wrapHandler(topic string, handler MessageHandler) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		message.Touch()

		err := handler(message.Body)
		if err == nil {
			message.Finish()
			return nil
		}

		if errors.Is(err, ErrPermanent) {
			logger.Warn("Dropping NSQ message",
				logger.String("topic", topic),
				logger.String("message_id", string(message.ID[:])),
				logger.Err(err))
			message.Finish()
			return nil
		}

		logger.Error("Error processing NSQ message",
			logger.String("topic", topic),
			logger.Int("attempts", int(message.Attempts)),
			logger.Err(err))
		return err
	}
}

// ConnectToNSQD connects the consumer directly to an nsqd instance
func (c *Consumer) ConnectToNSQD(address string) error {
	if err := c.consumer.ConnectToNSQD(address); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// ConnectToLookupd connects the consumer to NSQ lookupd instances
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	for _, addr := range addresses {
		if err := c.consumer.ConnectToNSQLookupd(addr); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", addr, err)
		}
	}
	return nil
}

// Topic returns the topic this consumer reads
func (c *Consumer) Topic() string {
	return c.topic
}

// UnmarshalMessage deserializes a JSON message into the provided struct.
// Decode failures are permanent.
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %v: %w", err, ErrPermanent)
	}
	return nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
