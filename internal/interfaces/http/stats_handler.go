package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudmoonocus/home-inventory/internal/application/dto"
	"github.com/cloudmoonocus/home-inventory/internal/application/usecase"
	"github.com/cloudmoonocus/home-inventory/pkg/logger"
)

const msgStatsFailed = "获取统计数据失败"

// StatsHandler maneja el endpoint de estadísticas del inventario.
type StatsHandler struct {
	uc  *usecase.StatsUseCase
	log *logger.Logger
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase, log *logger.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Estadísticas del inventario
// @Description  Totales globales, desglose por categoría y últimos 5 artículos creados.
//               Se recalculan en cada llamada; nada se persiste.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.uc.Get(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("op", "stats.get").Msg("estadísticas del inventario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgStatsFailed})
	}
	return c.JSON(stats)
}
