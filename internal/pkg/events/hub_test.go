package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	ch, cleanup := hub.Subscribe(TopicActivityUpdated)
	defer cleanup()

	hub.Publish(TopicActivityUpdated, map[string]string{"staff_id": "s1"})

	select {
	case ev := <-ch:
		assert.Equal(t, TopicActivityUpdated, ev.Topic)
		assert.NotEmpty(t, ev.ID)
		assert.False(t, ev.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected event, got none")
	}
}

func TestHub_TopicsAreIsolated(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	ch, cleanup := hub.Subscribe(TopicTargetSaved)
	defer cleanup()

	hub.Publish(TopicActivityUpdated, nil)

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event on other topic: %v", ev.Topic)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_SubscribeMultipleTopics(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	ch, cleanup := hub.Subscribe(TopicActivityUpdated, TopicTargetSaved)
	defer cleanup()

	hub.Publish(TopicActivityUpdated, nil)
	hub.Publish(TopicTargetSaved, nil)

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case ev := <-ch:
			got[ev.Topic] = true
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for events")
		}
	}
	assert.True(t, got[TopicActivityUpdated])
	assert.True(t, got[TopicTargetSaved])
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	_, cleanup := hub.Subscribe(TopicHolidaysSynced)
	require.Equal(t, 1, hub.SubscriberCount(TopicHolidaysSynced))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount(TopicHolidaysSynced))
}

func TestHub_FullChannelDoesNotBlockPublisher(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	_, cleanup := hub.Subscribe(TopicActivityUpdated)
	defer cleanup()

	done := make(chan struct{})
	go func() {
		// More events than the channel buffer holds; must not block.
		for i := 0; i < 100; i++ {
			hub.Publish(TopicActivityUpdated, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on full subscriber channel")
	}
}
