package run

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service, mgr *Manager) {
	r.Post("/sessions", func(c *fiber.Ctx) error {
		var req struct {
			UserID string `json:"user_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.UserID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		session := mgr.Start(req.UserID)
		return c.Status(fiber.StatusCreated).JSON(session.Metrics())
	})

	r.Post("/sessions/:id/fixes", func(c *fiber.Ctx) error {
		var fix LocationFix
		if err := c.BodyParser(&fix); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		session, err := mgr.Get(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		session.ProcessFix(fix)
		return c.JSON(session.Metrics())
	})

	r.Post("/sessions/:id/provider-error", func(c *fiber.Ctx) error {
		var req struct {
			Message string `json:"message"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		session, err := mgr.Get(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		session.NoteProviderError(req.Message)
		return c.JSON(session.Metrics())
	})

	r.Get("/sessions/:id/metrics", func(c *fiber.Ctx) error {
		session, err := mgr.Get(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return c.JSON(session.Metrics())
	})

	r.Post("/sessions/:id/pause", func(c *fiber.Ctx) error {
		session, err := mgr.Get(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		session.Pause()
		return c.JSON(session.Metrics())
	})

	r.Post("/sessions/:id/resume", func(c *fiber.Ctx) error {
		session, err := mgr.Get(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		session.Resume()
		return c.JSON(session.Metrics())
	})

	r.Post("/sessions/:id/stop", func(c *fiber.Ctx) error {
		summary, err := mgr.Finish(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		record, err := svc.SaveRun(c.Context(), summary)
		if err != nil {
			// The summary is already assembled; surface the save failure
			// without discarding the in-memory result.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   err.Error(),
				"summary": summary,
			})
		}
		return c.Status(fiber.StatusCreated).JSON(record)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		userID := c.Query("user_id")
		if userID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		runs, err := svc.ListRuns(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(runs)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		record, err := svc.GetRun(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(record)
	})

	r.Post("/:id/highlight", func(c *fiber.Ctx) error {
		var req struct {
			Highlighted bool `json:"highlighted"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := svc.SetHighlighted(c.Context(), c.Params("id"), req.Highlighted); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/:id/share", func(c *fiber.Ctx) error {
		var req struct {
			GroupID string `json:"group_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.GroupID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "group_id required")
		}
		if err := svc.ShareToGroup(c.Context(), c.Params("id"), req.GroupID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
