// Package events publishes content-change notifications for downstream
// readers of the same collections (the public site's cache refresh). The
// write path never depends on a publish succeeding.
package events

import (
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Change describes one committed write.
type Change struct {
	Resource string    `json:"resource"`
	Op       string    `json:"op"`
	ID       string    `json:"id"`
	At       time.Time `json:"at"`
}

type Publisher struct {
	publisher message.Publisher
	topic     string
}

func NewPublisher(publisher message.Publisher, topic string) *Publisher {
	return &Publisher{
		publisher: publisher,
		topic:     topic,
	}
}

func (p *Publisher) Publish(change Change) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}

	return p.publisher.Publish(p.topic, message.NewMessage(uuid.NewString(), payload))
}

func (p *Publisher) Close() error {
	return p.publisher.Close()
}
