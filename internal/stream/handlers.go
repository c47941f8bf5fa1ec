package stream

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes exposes one websocket endpoint per topic. Use
// "run-{sessionID}" for live session metrics and "event-{eventID}" for
// event notifications and leaderboards.
func RegisterRoutes(r fiber.Router, hub *Hub) {
	r.Get("/ws/:topic", websocket.New(func(c *websocket.Conn) {
		topic := c.Params("topic")
		client := hub.Register(topic)
		defer hub.Unregister(client)

		done := make(chan struct{})
		go func() {
			for msg := range client.Send {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					break
				}
			}
			close(done)
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
		<-done
	}))
}
