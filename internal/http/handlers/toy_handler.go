package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"toystore/internal/domain"
	applog "toystore/internal/log"
	"toystore/internal/services"
	"toystore/internal/validate"
)

type ToyHandler struct {
	Toys *services.ToyService
}

// GET /
func (h *ToyHandler) Home(c *fiber.Ctx) error {
	return c.SendString("server is running")
}

// GET /healthz
func (h *ToyHandler) Health(c *fiber.Ctx) error {
	store := h.Toys.StoreName()
	if err := h.Toys.Ping(c.UserContext()); err != nil {
		applog.Error(c, "health.ping.fail", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ok": false, "store": store})
	}
	return c.JSON(fiber.Map{"ok": true, "store": store})
}

// GET /toys?limit=&sort=&photoLink=
func (h *ToyHandler) List(c *fiber.Ctx) error {
	q := services.ParseListQuery(c.Queries())
	if q.PhotoOnly {
		photos, err := h.Toys.ListPhotos(c.UserContext(), q)
		if err != nil {
			return err
		}
		return c.JSON(photos)
	}
	toys, err := h.Toys.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(toys)
}

// GET /toys/category?category=
func (h *ToyHandler) ByCategory(c *fiber.Ctx) error {
	f, err := services.ParseFilter(c.Queries())
	if err != nil {
		return err
	}
	toys, err := h.Toys.ByCategory(c.UserContext(), f)
	if err != nil {
		return err
	}
	return c.JSON(toys)
}

// GET /my-toys?sellerEmail=
func (h *ToyHandler) Mine(c *fiber.Ctx) error {
	f, err := services.ParseFilter(c.Queries())
	if err != nil {
		return err
	}
	toys, err := h.Toys.Owned(c.UserContext(), f)
	if err != nil {
		return err
	}
	return c.JSON(toys)
}

// GET /my-toys/search?keyword=
func (h *ToyHandler) Search(c *fiber.Ctx) error {
	toys, err := h.Toys.Search(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(toys)
}

// GET /toys/:toyId answers null for an unknown id.
func (h *ToyHandler) Get(c *fiber.Ctx) error {
	id, err := toyID(c)
	if err != nil {
		return err
	}
	toy, err := h.Toys.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toy)
}

// POST /toys
func (h *ToyHandler) Create(c *fiber.Ctx) error {
	var t domain.Toy
	if err := c.BodyParser(&t); err != nil {
		return badBody(c, err)
	}
	res, err := h.Toys.Create(c.UserContext(), t)
	if err != nil {
		return err
	}
	applog.Audit(c, "toy.create", map[string]any{"toy_id": res.InsertedID})
	return c.JSON(res)
}

// PUT /toys/:toyId
func (h *ToyHandler) Update(c *fiber.Ctx) error {
	id, err := toyID(c)
	if err != nil {
		return err
	}
	var p domain.ToyPatch
	if err := c.BodyParser(&p); err != nil {
		return badBody(c, err)
	}
	res, err := h.Toys.Update(c.UserContext(), id, p)
	if err != nil {
		return err
	}
	applog.Audit(c, "toy.update", map[string]any{"matched": res.MatchedCount, "modified": res.ModifiedCount})
	return c.JSON(res)
}

// DELETE /toys/:toyId
func (h *ToyHandler) Delete(c *fiber.Ctx) error {
	id, err := toyID(c)
	if err != nil {
		return err
	}
	res, err := h.Toys.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	applog.Audit(c, "toy.delete", map[string]any{"deleted": res.DeletedCount})
	return c.JSON(res)
}

func toyID(c *fiber.Ctx) (string, error) {
	raw := c.Params("toyId")
	id, ok := validate.ID(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}

func badBody(c *fiber.Ctx, err error) error {
	applog.Warn(c, "validation.fail", map[string]any{"field": "body", "err": err.Error()})
	return fiber.NewError(fiber.StatusBadRequest, "request body is not a valid toy")
}
