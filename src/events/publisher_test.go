package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherPublishesChange(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	messages, err := pubSub.Subscribe(context.Background(), "content.changes")
	require.NoError(t, err)

	publisher := NewPublisher(pubSub, "content.changes")
	change := Change{Resource: "matches", Op: OpCreate, ID: "05032024-01", At: time.Now()}
	require.NoError(t, publisher.Publish(change))

	select {
	case msg := <-messages:
		var got Change
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, change.Resource, got.Resource)
		assert.Equal(t, change.Op, got.Op)
		assert.Equal(t, change.ID, got.ID)
		assert.NotEmpty(t, msg.UUID)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("no change message received")
	}
}
