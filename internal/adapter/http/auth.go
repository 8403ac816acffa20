package http

import (
	"career-compass/internal/model"

	"github.com/gofiber/fiber/v2"
)

const sessionUserKey = "userId"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks credentials and stores the user's id in the session.
// Unknown username and wrong password both come back as the same 401.
func (h *Handler) Login(c *fiber.Ctx) error {
	if err := model.ValidateLogin(c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}

	user, ok := h.auth.Login(req.Username, req.Password)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Login failed"})
	}
	sess.Set(sessionUserKey, user.ID)
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Login failed"})
	}

	return c.JSON(user)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to logout"})
	}
	if err := sess.Destroy(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to logout"})
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// Me returns the user behind the session cookie. The session value is
// an opaque numeric id used only as a store lookup key.
func (h *Handler) Me(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authenticated"})
	}
	id, ok := sess.Get(sessionUserKey).(int)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authenticated"})
	}
	user, ok := h.auth.CurrentUser(id)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authenticated"})
	}
	return c.JSON(user)
}
