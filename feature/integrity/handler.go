package integrity

import (
	"booking-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/index", h.HandleIndexCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Audits the availability index and checks the catalog database and storage.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.CheckAll(c.Context()))
}

// HandleIndexCheck audits the availability index.
// @Summary Check Availability Index
// @Description Verifies that the availability index mirrors the dates of every stored home.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.IndexReport "Index Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/index [get]
func (h *Handler) HandleIndexCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckIndex()
	if err != nil {
		l.Error("Index check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleDatabaseCheck checks the catalog schema.
// @Summary Check Catalog Database
// @Description Checks if the catalog tables match the expected models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DatabaseReport "Database Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting catalog schema check")

	report, err := h.service.CheckDatabase()
	if err != nil {
		l.Error("Catalog schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleStorageCheck checks the catalog objects.
// @Summary Check Catalog Storage
// @Description Checks that the catalog bucket exists and that its objects match the home contract.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Catalog storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if report.Status != "ok" {
		l.Warn("Catalog storage issues detected", zap.String("status", report.Status), zap.Strings("invalid", report.Invalid))
	}
	return c.JSON(report)
}
