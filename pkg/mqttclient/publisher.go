package mqttclient

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// IPublisher is the outbound capability a service loop depends on.
type IPublisher interface {
	PublishMessage(payload []byte) error
	PublishTo(topic string, payload []byte) error
	Close()
}

// Publisher publishes to a default topic, or to explicit subtopics of it.
type Publisher struct {
	client mqtt.Client
	topic  string
}

func NewPublisher(client mqtt.Client, topic string) *Publisher {
	return &Publisher{
		client: client,
		topic:  topic,
	}
}

// PublishMessage publishes to the default topic at its configured QoS.
func (p *Publisher) PublishMessage(payload []byte) error {
	return p.PublishTo(p.topic, payload)
}

// PublishTo publishes to an explicit topic, for publishers that fan out per
// field or per sensor.
func (p *Publisher) PublishTo(topic string, payload []byte) error {
	token := p.client.Publish(topic, qosFor(topic), false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, token.Error())
	}
	return nil
}

// Close disconnects the underlying client if still connected.
func (p *Publisher) Close() {
	if p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
