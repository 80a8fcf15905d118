package homes

import (
	"errors"
	"strconv"

	"booking-api/core/calendar"
	"booking-api/core/logger"
	"booking-api/feature/homes/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for homes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the homes routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/available-homes")
	group.Post("/", h.HandleAddHome)
	group.Post("/batch", h.HandleAddHomes)
	group.Get("/", h.HandleGetAvailableHomes)
	group.Get("/:id", h.HandleGetHome)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// HandleAddHome stores a new home.
// @Summary Add Home
// @Description Registers a home with its available dates and returns it with its assigned id.
// @Tags homes
// @Accept json
// @Produce json
// @Param home body models.HomeInput true "Home"
// @Success 200 {object} models.HomeOutput "Created home"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/available-homes [post]
func (h *Handler) HandleAddHome(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var input models.HomeInput
	if err := c.BodyParser(&input); err != nil {
		l.Warn("Rejected home payload", zap.Error(err))
		return badRequest(c, "invalid request body: "+err.Error())
	}

	home, err := h.service.Add(input)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(models.NewHomeOutput(home))
}

// HandleAddHomes stores a batch of homes.
// @Summary Add Homes
// @Description Registers homes in request order. Nothing is stored when any home is invalid.
// @Tags homes
// @Accept json
// @Produce json
// @Param homes body []models.HomeInput true "Homes"
// @Success 200 {array} models.HomeOutput "Created homes"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/available-homes/batch [post]
func (h *Handler) HandleAddHomes(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var inputs []models.HomeInput
	if err := c.BodyParser(&inputs); err != nil {
		l.Warn("Rejected homes payload", zap.Error(err))
		return badRequest(c, "invalid request body: "+err.Error())
	}

	homes, err := h.service.AddRange(inputs)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(models.NewHomeOutputs(homes))
}

// HandleGetAvailableHomes returns the homes available on every day of a range.
// @Summary Available Homes
// @Description Lists homes available on each and every day of [startDate, endDate].
// @Tags homes
// @Produce json
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {array} models.HomeOutput "Available homes"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/available-homes [get]
func (h *Handler) HandleGetAvailableHomes(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	start, err1 := calendar.Parse(c.Query("startDate"))
	end, err2 := calendar.Parse(c.Query("endDate"))
	if err1 != nil || err2 != nil {
		return badRequest(c, "Start date and end date must be provided and valid")
	}
	if start.After(end) {
		return badRequest(c, "Start date cannot be later than end date")
	}

	homes, err := h.service.GetByDateRange(start, end)
	if err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			return badRequest(c, err.Error())
		}
		l.Error("Available homes query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.NewHomeOutputs(homes))
}

// HandleGetHome returns a single home.
// @Summary Get Home
// @Tags homes
// @Produce json
// @Param id path int true "Home id"
// @Success 200 {object} models.HomeOutput "Home"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/available-homes/{id} [get]
func (h *Handler) HandleGetHome(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "id must be an integer")
	}

	home, err := h.service.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models.NewHomeOutput(home))
}
