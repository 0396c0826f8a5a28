package event

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Message is the envelope sent to WebSocket clients and Kafka consumers.
type Message struct {
	Type       string      `json:"type"`
	Key        string      `json:"key,omitempty"`
	Data       interface{} `json:"data"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// Broadcaster pushes a value to realtime subscribers.
type Broadcaster interface {
	BroadcastJSON(v interface{}) error
}

// Dispatcher fans committed domain events out to the WebSocket hub and the bus.
// Kafka sends run in the background; Close waits for them.
type Dispatcher struct {
	hub         Broadcaster
	publisher   Publisher
	topicPrefix string
	log         *logrus.Entry
	wg          sync.WaitGroup
	now         func() time.Time
}

func NewDispatcher(hub Broadcaster, publisher Publisher, topicPrefix string, log *logrus.Entry) *Dispatcher {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Dispatcher{
		hub:         hub,
		publisher:   publisher,
		topicPrefix: strings.TrimSuffix(topicPrefix, "."),
		log:         log.WithField("component", "event"),
		now:         time.Now,
	}
}

// Topic maps an event type like "payment.status_updated" to its Kafka topic.
func (d *Dispatcher) Topic(eventType string) string {
	if d.topicPrefix == "" {
		return eventType
	}
	return d.topicPrefix + "." + eventType
}

func (d *Dispatcher) Notify(eventType, key string, payload interface{}) {
	msg := Message{Type: eventType, Key: key, Data: payload, OccurredAt: d.now().UTC()}

	if d.hub != nil {
		if err := d.hub.BroadcastJSON(msg); err != nil {
			d.log.WithError(err).WithField("type", eventType).Warn("ws broadcast failed")
		}
	}

	body, err := json.Marshal(msg)
	if err != nil {
		d.log.WithError(err).WithField("type", eventType).Error("encode event")
		return
	}

	topic := d.Topic(eventType)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.publisher.Publish(topic, key, body); err != nil {
			d.log.WithError(err).WithField("topic", topic).Warn("event not published")
			return
		}
		d.log.WithField("topic", topic).Debug("event published")
	}()
}

// Close waits for in-flight publishes and closes the publisher.
func (d *Dispatcher) Close() error {
	d.wg.Wait()
	return d.publisher.Close()
}
