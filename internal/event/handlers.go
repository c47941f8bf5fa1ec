package event

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req RunEvent
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		e, err := svc.CreateEvent(c.Context(), req)
		if err != nil {
			if errors.Is(err, ErrInvalidWindow) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	})

	r.Post("/seed", func(c *fiber.Ctx) error {
		var req struct {
			Lat       float64 `json:"lat"`
			Lng       float64 `json:"lng"`
			CreatedBy string  `json:"created_by"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		events, err := svc.SeedEvents(c.Context(), req.Lat, req.Lng, req.CreatedBy)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(events)
	})

	r.Get("/nearby", func(c *fiber.Ctx) error {
		lat, err := strconv.ParseFloat(c.Query("lat"), 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lat required")
		}
		lng, err := strconv.ParseFloat(c.Query("lng"), 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lng required")
		}
		events, err := svc.Nearby(c.Context(), lat, lng)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(events)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		e, err := svc.GetEvent(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(e)
	})

	r.Post("/:id/join", func(c *fiber.Ctx) error {
		var req struct {
			UserID   string  `json:"user_id"`
			UserName string  `json:"user_name"`
			Lat      float64 `json:"lat"`
			Lng      float64 `json:"lng"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.UserID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		p, err := svc.Join(c.Context(), c.Params("id"), req.UserID, req.UserName, req.Lat, req.Lng)
		if err != nil {
			if errors.Is(err, ErrEventFull) || errors.Is(err, ErrTooFar) {
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	})

	r.Post("/:id/leave", func(c *fiber.Ctx) error {
		var req struct {
			UserID string `json:"user_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := svc.Leave(c.Context(), c.Params("id"), req.UserID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/:id/start", func(c *fiber.Ctx) error {
		var req struct {
			UserID string `json:"user_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		p, err := svc.StartRunning(c.Context(), c.Params("id"), req.UserID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(p)
	})

	r.Post("/:id/stop", func(c *fiber.Ctx) error {
		var req struct {
			UserID string `json:"user_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		p, err := svc.StopRunning(c.Context(), c.Params("id"), req.UserID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(p)
	})

	r.Post("/:id/metrics", func(c *fiber.Ctx) error {
		var req struct {
			UserID      string  `json:"user_id"`
			DistanceM   float64 `json:"distance_m"`
			DurationSec float64 `json:"duration_sec"`
			AveragePace float64 `json:"average_pace_min_km"`
			Lat         float64 `json:"lat"`
			Lng         float64 `json:"lng"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		p, err := svc.UpdateMetrics(c.Context(), c.Params("id"), req.UserID,
			req.DistanceM, req.DurationSec, req.AveragePace, req.Lat, req.Lng)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(p)
	})

	r.Get("/:id/leaderboard", func(c *fiber.Ctx) error {
		ranked, err := svc.Leaderboard(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(ranked)
	})
}
