package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestRedisPublisher_Publish(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, Channel("u1"))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	pub := NewRedisPublisher(client)
	err = pub.Publish(ctx, Event{
		Type:      TypeKitGenerated,
		UserID:    "u1",
		ProjectID: "p-1",
		KitID:     "k-1",
		BrandName: "Nova",
		Profile:   "studio",
	})
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "brandkit:events:u1", msg.Channel)

		var ev Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
		assert.NotEmpty(t, ev.ID)
		assert.Equal(t, TypeKitGenerated, ev.Type)
		assert.Equal(t, "k-1", ev.KitID)
		assert.False(t, ev.At.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestRedisPublisher_ServerDown(t *testing.T) {
	client, mr := setupTestRedis(t)
	mr.Close()

	err := NewRedisPublisher(client).Publish(context.Background(), Event{Type: TypeKitFailed, UserID: "u1"})
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Publish(context.Background(), Event{}))
}
