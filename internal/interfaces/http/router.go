package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudmoonocus/home-inventory/internal/application/usecase"
	"github.com/cloudmoonocus/home-inventory/pkg/logger"
)

// RouterDeps dependencias para el router. Los handlers las reciben construidas;
// ninguno posee el ciclo de vida del pool ni del logger.
type RouterDeps struct {
	ItemUC     *usecase.ItemUseCase
	CategoryUC *usecase.CategoryUseCase
	StatsUC    *usecase.StatsUseCase
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.Log)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	api.Get("/categories", categoryHandler.List)

	statsHandler := NewStatsHandler(deps.StatsUC, deps.Log)
	api.Get("/stats", statsHandler.Get)
}
