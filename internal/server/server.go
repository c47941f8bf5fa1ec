package server

import (
	"encoding/json"
	"time"

	"backend-runclub/internal/config"
	"backend-runclub/internal/event"
	"backend-runclub/internal/group"
	"backend-runclub/internal/run"
	"backend-runclub/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	DB       *pgxpool.Pool
	Redis    *redis.Client
	Stream   *stream.Hub
	Sessions *run.Manager
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	hub := stream.NewHub(redisClient)

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: hub,
		Sessions: run.NewManager(func(snapshot run.Snapshot) {
			payload, _ := json.Marshal(snapshot)
			hub.Broadcast(stream.RunTopic(snapshot.SessionID), payload)
		}),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	run.RegisterRoutes(s.App.Group("/runs"), run.NewService(s.DB), s.Sessions)
	event.RegisterRoutes(s.App.Group("/events"), event.NewService(s.DB, &hubNotifier{hub: s.Stream}))
	group.RegisterRoutes(s.App.Group("/groups"), group.NewService(s.DB))
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}

// hubNotifier forwards event lifecycle notifications onto the live stream.
// Subscribers on the event topic decide how to present them.
type hubNotifier struct {
	hub *stream.Hub
}

func (n *hubNotifier) Notify(note event.Notification) {
	if note.At.IsZero() {
		note.At = time.Now()
	}
	payload, _ := json.Marshal(note)
	n.hub.Broadcast(stream.EventTopic(note.EventID), payload)
}
