package mqttclient

import (
	"context"
	"log"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// IConsumer is the subscription capability a service loop depends on.
type IConsumer interface {
	ConsumeMessage(ctx context.Context)
	SetHandler(handler func(topic string, message mqtt.Message) error)
}

// Consumer subscribes to one topic filter and routes messages to a handler.
type Consumer struct {
	client  mqtt.Client
	handler func(topic string, message mqtt.Message) error
	topic   string
}

func NewConsumer(client mqtt.Client, topic string, handler func(topic string, message mqtt.Message) error) *Consumer {
	return &Consumer{
		client:  client,
		topic:   topic,
		handler: handler,
	}
}

func (c *Consumer) SetHandler(handler func(topic string, message mqtt.Message) error) {
	c.handler = handler
}

// qosFor picks the delivery guarantee per topic family. Report events and
// sensor readings must survive a flaky link, so they ride at-least-once;
// everything else stays fire-and-forget.
func qosFor(topic string) byte {
	t := strings.TrimSpace(topic)
	if strings.HasPrefix(t, "sensor/soil") ||
		strings.HasPrefix(t, "event/soilReport") ||
		strings.HasPrefix(t, "event/diagnosisReport") {
		return 1
	}
	return 0
}

// ConsumeMessage subscribes and blocks until ctx is cancelled, then
// unsubscribes.
func (c *Consumer) ConsumeMessage(ctx context.Context) {
	token := c.client.Subscribe(
		c.topic,
		qosFor(c.topic),
		func(_ mqtt.Client, message mqtt.Message) {
			if c.handler == nil {
				log.Printf("mqtt: no handler set for topic %s", c.topic)
				return
			}
			if err := c.handler(c.topic, message); err != nil {
				log.Printf("mqtt: handling message on %s: %v", c.topic, err)
			}
		},
	)

	if token.Wait() && token.Error() != nil {
		log.Printf("mqtt: subscribe to %s: %v", c.topic, token.Error())
		return
	}

	log.Printf("mqtt: subscribed to %s", c.topic)

	<-ctx.Done()

	unsubToken := c.client.Unsubscribe(c.topic)
	unsubToken.Wait()
}

// MultiConsumer fans one handler across several topic filters.
type MultiConsumer struct {
	client  mqtt.Client
	topics  []string
	handler func(topic string, message mqtt.Message) error
}

func NewMultiConsumer(client mqtt.Client, topics []string, handler func(topic string, message mqtt.Message) error) *MultiConsumer {
	return &MultiConsumer{
		client:  client,
		topics:  topics,
		handler: handler,
	}
}

func (m *MultiConsumer) SetHandler(handler func(topic string, message mqtt.Message) error) {
	m.handler = handler
}

func (m *MultiConsumer) ConsumeMessage(ctx context.Context) {
	for _, topic := range m.topics {
		topic := topic
		token := m.client.Subscribe(
			topic,
			qosFor(topic),
			func(_ mqtt.Client, msg mqtt.Message) {
				if m.handler == nil {
					log.Printf("mqtt: no handler set for topic %s", topic)
					return
				}
				if err := m.handler(topic, msg); err != nil {
					log.Printf("mqtt: handling message on %s: %v", topic, err)
				}
			},
		)
		token.Wait()
		if token.Error() != nil {
			log.Printf("mqtt: subscribe to %s: %v", topic, token.Error())
		} else {
			log.Printf("mqtt: subscribed to %s", topic)
		}
	}

	<-ctx.Done()

	for _, topic := range m.topics {
		m.client.Unsubscribe(topic)
	}
}
