package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudmoonocus/home-inventory/internal/application/dto"
	"github.com/cloudmoonocus/home-inventory/internal/application/usecase"
	"github.com/cloudmoonocus/home-inventory/pkg/logger"
)

const msgCategoriesFailed = "获取分类失败"

// CategoryHandler maneja el listado de categorías (solo lectura).
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar categorías
// @Description  Todas las categorías ordenadas por nombre, con etiqueta localizada e icono.
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Str("op", "categories.list").Msg("listado de categorías")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgCategoriesFailed})
	}
	return c.JSON(categories)
}
