package websockets

import (
	"context"
	"encoding/json"
	"log"

	"github.com/lucsky/cuid"
	"github.com/redis/go-redis/v9"
)

const relayChannel = "rojgar:group-events"

// RedisRelay republishes room events through Redis so that clients
// connected to other instances still receive them. Room membership
// stays process-local; only the events travel. Envelopes carry an
// origin id so an instance never re-delivers its own publishes.
type RedisRelay struct {
	client  *redis.Client
	manager *WebSocketManager
	origin  string
}

type relayEnvelope struct {
	Origin  string          `json:"origin"`
	GroupID string          `json:"group_id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func NewRedisRelay(redisURL string, manager *WebSocketManager) (*RedisRelay, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisRelay{
		client:  client,
		manager: manager,
		origin:  cuid.New(),
	}, nil
}

// Run consumes the relay channel until ctx is cancelled.
func (r *RedisRelay) Run(ctx context.Context) {
	pubsub := r.client.Subscribe(ctx, relayChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var env relayEnvelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			log.Println("relay: invalid envelope:", err)
			continue
		}
		if env.Origin == r.origin {
			continue
		}
		r.manager.deliver(env.GroupID, env.Type, env.Payload, nil)
	}
}

func (r *RedisRelay) Publish(groupID, eventType string, payload json.RawMessage) {
	env := relayEnvelope{
		Origin:  r.origin,
		GroupID: groupID,
		Type:    eventType,
		Payload: payload,
	}

	data, err := json.Marshal(env)
	if err != nil {
		log.Println("relay: error marshalling envelope:", err)
		return
	}

	if err := r.client.Publish(context.Background(), relayChannel, data).Err(); err != nil {
		log.Println("relay: publish failed:", err)
	}
}

func (r *RedisRelay) Close() error {
	return r.client.Close()
}
