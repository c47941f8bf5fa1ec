package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub fans live payloads out to websocket subscribers, keyed by topic.
// Run sessions publish metric snapshots on RunTopic(sessionID); event
// lifecycles publish notifications and leaderboards on EventTopic(eventID).
// When redis is configured, payloads are mirrored over pub/sub so every
// instance reaches its local subscribers.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	Topic string
	Send  chan []byte
}

func RunTopic(sessionID string) string {
	return "run-" + sessionID
}

func EventTopic(eventID string) string {
	return "event-" + eventID
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(topic string) *Client {
	client := &Client{
		Topic: topic,
		Send:  make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[topic] == nil {
		h.clients[topic] = map[*Client]struct{}{}
	}
	h.clients[topic][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if topicClients, ok := h.clients[client.Topic]; ok {
		delete(topicClients, client)
		if len(topicClients) == 0 {
			delete(h.clients, client.Topic)
		}
	}
	close(client.Send)
}

// Broadcast publishes a payload for all subscribers of a topic. With redis
// configured every delivery, local included, goes through pub/sub so each
// subscriber sees a payload exactly once regardless of which instance
// published it. Without redis the payload fans out locally.
func (h *Hub) Broadcast(topic string, payload []byte) {
	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(topic), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
		return
	}

	h.deliver(topic, payload)
}

// deliver fans a payload out to the local subscribers of a topic. Slow
// subscribers are skipped rather than blocking the publisher.
func (h *Hub) deliver(topic string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[topic]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "live:*:feed")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.deliver(topicFromChannel(msg.Channel), []byte(msg.Payload))
	}
}

func redisChannel(topic string) string {
	return "live:" + topic + ":feed"
}

func topicFromChannel(ch string) string {
	// live:{topic}:feed
	const prefix = "live:"
	const suffix = ":feed"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
