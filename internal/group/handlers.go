package group

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req Group
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == "" || req.CreatedBy == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name and created_by required")
		}
		g, err := svc.CreateGroup(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(g)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		userID := c.Query("user_id")
		if userID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		groups, err := svc.ListGroups(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(groups)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		g, err := svc.GetGroup(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(g)
	})

	r.Post("/:id/members", func(c *fiber.Ctx) error {
		var req struct {
			UserID   string `json:"user_id"`
			UserName string `json:"user_name"`
			Role     string `json:"role"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.UserID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		m, err := svc.AddMember(c.Context(), c.Params("id"), req.UserID, req.UserName, req.Role)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	})

	r.Get("/:id/members", func(c *fiber.Ctx) error {
		members, err := svc.Members(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(members)
	})

	r.Get("/:id/runs", func(c *fiber.Ctx) error {
		runs, err := svc.SharedRuns(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(runs)
	})
}
