package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cloudmoonocus/home-inventory/internal/application/dto"
	"github.com/cloudmoonocus/home-inventory/internal/application/usecase"
	"github.com/cloudmoonocus/home-inventory/internal/domain"
	"github.com/cloudmoonocus/home-inventory/pkg/logger"
)

// Mensajes localizados para el usuario (zh-CN, el idioma del producto).
// El detalle técnico de los errores del almacén solo va al log, nunca a la respuesta.
const (
	msgRequiredFields = "名称和物品规格为必填项"
	msgInvalidBody    = "请求数据格式错误"
	msgItemNotFound   = "物品不存在"
	msgListFailed     = "获取物品失败"
	msgCreateFailed   = "创建物品失败"
	msgUpdateFailed   = "更新物品失败"
	msgDeleteFailed   = "删除物品失败"
)

// ItemHandler maneja las peticiones HTTP para los artículos del inventario.
type ItemHandler struct {
	uc  *usecase.ItemUseCase
	log *logger.Logger
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, log *logger.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar artículos con filtros opcionales
// @Description  Filtra por texto libre (name/location/source/notes), categoría y tamaño.
//               Los filtros inválidos se ignoran en vez de fallar. Orden: updated_at DESC.
// @Tags         items
// @Produce      json
// @Param        search     query  string  false  "Texto a buscar (contiene, sin distinguir mayúsculas)"
// @Param        category   query  int     false  "ID de categoría"
// @Param        size_type  query  string  false  "small o large"
// @Success      200  {array}   dto.ItemResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var req dto.ItemFilterRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgInvalidBody})
	}
	items, err := h.uc.List(c.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Str("op", "items.list").Msg("listado de artículos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgListFailed})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgInvalidBody})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgRequiredFields})
		}
		h.log.Error().Err(err).Str("op", "items.create").Msg("creación de artículo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgCreateFailed})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar artículo
// @Description  Reemplazo completo de los campos mutables; updated_at se refresca en el servidor.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del artículo"
// @Param        body  body  dto.ItemRequest  true  "Datos del artículo"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		// Un ID no numérico no puede corresponder a ninguna fila
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgItemNotFound})
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgInvalidBody})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgRequiredFields})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgItemNotFound})
		}
		h.log.Error().Err(err).Str("op", "items.update").Int64("id", id).Msg("actualización de artículo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgUpdateFailed})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         items
// @Produce      json
// @Param        id  path  int  true  "ID del artículo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgItemNotFound})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgItemNotFound})
		}
		h.log.Error().Err(err).Str("op", "items.delete").Int64("id", id).Msg("borrado de artículo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgDeleteFailed})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
