package http

import (
	"log"

	"career-compass/internal/domain"
	"career-compass/internal/model"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Handler owns the REST surface. It validates request shape at the
// boundary, delegates persistence to the store and AI analyses to the
// advisor, and translates store misses into 404s.
type Handler struct {
	store    usecase.Store
	auth     *usecase.Auth
	advisor  *usecase.Advisor
	sessions *session.Store
}

func NewHandler(store usecase.Store, auth *usecase.Auth, advisor *usecase.Advisor, sessions *session.Store) *Handler {
	return &Handler{store: store, auth: auth, advisor: advisor, sessions: sessions}
}

// Register mounts every route under /api.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/login", h.Login)
	api.Post("/logout", h.Logout)
	api.Get("/me", h.Me)

	api.Post("/users", h.CreateUser)
	api.Get("/users/:id", h.GetUser)
	api.Put("/users/:id", h.UpdateUser)

	api.Get("/users/:userId/assessments", h.ListAssessments)
	api.Post("/assessments", h.CreateAssessment)
	api.Put("/assessments/:id", h.UpdateAssessment)

	api.Get("/users/:userId/career-matches", h.ListCareerMatches)
	api.Post("/career-matches", h.CreateCareerMatch)

	api.Get("/users/:userId/skill-gaps", h.ListSkillGaps)
	api.Post("/skill-gaps", h.CreateSkillGap)
	api.Put("/skill-gaps/:id", h.UpdateSkillGap)

	api.Get("/resources", h.ListResources)
	api.Post("/resources", h.CreateResource)
	api.Get("/skills/:skillId/resources", h.ListResourcesBySkill)

	api.Get("/market-trends", h.ListMarketTrends)
	api.Get("/market-trends/:career", h.ListMarketTrendsByCareer)
	api.Post("/market-trends", h.CreateMarketTrend)

	api.Post("/ai/career-recommendations", h.CareerRecommendations)
	api.Post("/ai/skill-gap", h.SkillGapAnalysis)
}

// User routes

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	if err := model.ValidateUser(c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	var in domain.InsertUser
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	if _, exists := h.store.GetUserByUsername(in.Username); exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Username already taken"})
	}
	user := h.store.CreateUser(in)
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}
	user, ok := h.store.GetUser(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}
	return c.JSON(user)
}

func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}
	var patch domain.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	user, ok := h.store.UpdateUser(id, patch)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}
	return c.JSON(user)
}

// Assessment routes

func (h *Handler) ListAssessments(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}
	return c.JSON(h.store.AssessmentsByUser(userID))
}

func (h *Handler) CreateAssessment(c *fiber.Ctx) error {
	if err := model.ValidateAssessment(c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	var in domain.InsertAssessment
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.CreateAssessment(in))
}

func (h *Handler) UpdateAssessment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid assessment id"})
	}
	var patch domain.AssessmentPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	assessment, ok := h.store.UpdateAssessment(id, patch)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Assessment not found"})
	}
	return c.JSON(assessment)
}

// Career match routes

func (h *Handler) ListCareerMatches(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}
	return c.JSON(h.store.CareerMatchesByUser(userID))
}

func (h *Handler) CreateCareerMatch(c *fiber.Ctx) error {
	if err := model.ValidateCareerMatch(c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	var in domain.InsertCareerMatch
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.CreateCareerMatch(in))
}

// Skill gap routes

func (h *Handler) ListSkillGaps(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}
	return c.JSON(h.store.SkillGapsByUser(userID))
}

func (h *Handler) CreateSkillGap(c *fiber.Ctx) error {
	if err := model.ValidateSkillGap(c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	var in domain.InsertSkillGap
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.CreateSkillGap(in))
}

func (h *Handler) UpdateSkillGap(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid skill gap id"})
	}
	var patch domain.SkillGapPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	gap, ok := h.store.UpdateSkillGap(id, patch)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Skill gap not found"})
	}
	return c.JSON(gap)
}

// Resource routes

func (h *Handler) ListResources(c *fiber.Ctx) error {
	return c.JSON(h.store.AllResources())
}

func (h *Handler) CreateResource(c *fiber.Ctx) error {
	if err := model.ValidateResource(c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	var in domain.InsertResource
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.CreateResource(in))
}

func (h *Handler) ListResourcesBySkill(c *fiber.Ctx) error {
	skillID, err := c.ParamsInt("skillId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid skill id"})
	}
	return c.JSON(h.store.ResourcesBySkill(skillID))
}

// Market trend routes

func (h *Handler) ListMarketTrends(c *fiber.Ctx) error {
	return c.JSON(h.store.MarketTrends())
}

func (h *Handler) ListMarketTrendsByCareer(c *fiber.Ctx) error {
	return c.JSON(h.store.MarketTrendsByCareer(c.Params("career")))
}

func (h *Handler) CreateMarketTrend(c *fiber.Ctx) error {
	if err := model.ValidateMarketTrend(c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	var in domain.InsertMarketTrend
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.CreateMarketTrend(in))
}

// AI routes. Required-field checks live here: when anything is missing
// the advisor, and the external service behind it, is never called.

type recommendationRequest struct {
	Skills             []string                   `json:"skills"`
	Interests          []string                   `json:"interests"`
	AcademicBackground *domain.AcademicBackground `json:"academicBackground"`
}

func (h *Handler) CareerRecommendations(c *fiber.Ctx) error {
	var req recommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	if len(req.Skills) == 0 || len(req.Interests) == 0 || req.AcademicBackground == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required information"})
	}

	report, err := h.advisor.RecommendCareers(c.Context(), req.Skills, req.Interests, *req.AcademicBackground)
	if err != nil {
		// one coarse category: unreachable and garbage replies look the same
		log.Printf("career recommendations failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate career recommendations"})
	}
	return c.JSON(report)
}

type skillGapRequest struct {
	CurrentSkills []string `json:"currentSkills"`
	TargetCareer  string   `json:"targetCareer"`
}

func (h *Handler) SkillGapAnalysis(c *fiber.Ctx) error {
	var req skillGapRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	if len(req.CurrentSkills) == 0 || req.TargetCareer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required information"})
	}

	analysis, err := h.advisor.AnalyzeSkillGap(c.Context(), req.CurrentSkills, req.TargetCareer)
	if err != nil {
		log.Printf("skill gap analysis failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to analyze skill gap"})
	}
	return c.JSON(analysis)
}
