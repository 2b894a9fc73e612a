package usecase

import (
	"context"
	"fmt"

	"github.com/cloudmoonocus/home-inventory/internal/application/dto"
	"github.com/cloudmoonocus/home-inventory/internal/domain/catalog"
	"github.com/cloudmoonocus/home-inventory/internal/domain/entity"
	"github.com/cloudmoonocus/home-inventory/internal/domain/repository"
)

const statsRecentItems = 5 // artículos en el widget "recientes" del dashboard

// StatsUseCase genera las estadísticas agregadas del inventario bajo demanda.
//
// Fuente de datos: StatsRepository (consultas read-only independientes).
// No persiste nada; cada llamada recalcula desde las tablas.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Get construye el StatsResponse completo.
//
// Tres lecturas en paralelo:
//  1. Totals             → totalItems, totalQuantity, smallItems, largeItems
//  2. CategoryBreakdown  → desglose por categoría (incluye categorías vacías)
//  3. RecentItems(5)     → últimos artículos creados
func (uc *StatsUseCase) Get(ctx context.Context) (*dto.StatsResponse, error) {
	type totalsResult struct {
		totals repository.InventoryTotals
		err    error
	}
	type breakdownResult struct {
		rows []repository.CategoryUsage
		err  error
	}
	type recentResult struct {
		items []*entity.Item
		err   error
	}

	totalsCh := make(chan totalsResult, 1)
	breakdownCh := make(chan breakdownResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		t, err := uc.repo.Totals(ctx)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		rows, err := uc.repo.CategoryBreakdown(ctx)
		breakdownCh <- breakdownResult{rows, err}
	}()
	go func() {
		items, err := uc.repo.RecentItems(ctx, statsRecentItems)
		recentCh <- recentResult{items, err}
	}()

	totals := <-totalsCh
	breakdown := <-breakdownCh
	recent := <-recentCh

	if totals.err != nil {
		return nil, fmt.Errorf("stats: totales: %w", totals.err)
	}
	if breakdown.err != nil {
		return nil, fmt.Errorf("stats: desglose por categoría: %w", breakdown.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("stats: artículos recientes: %w", recent.err)
	}

	byCategory := make([]dto.CategoryUsageDTO, 0, len(breakdown.rows))
	for _, row := range breakdown.rows {
		byCategory = append(byCategory, dto.CategoryUsageDTO{
			Name:          row.Name,
			DisplayName:   catalog.Label(row.Name),
			Icon:          catalog.Icon(row.Icon),
			Count:         row.Count,
			TotalQuantity: row.Quantity,
		})
	}

	recentItems := make([]dto.ItemResponse, 0, len(recent.items))
	for _, it := range recent.items {
		recentItems = append(recentItems, *toItemResponse(it))
	}

	return &dto.StatsResponse{
		TotalItems:        totals.totals.TotalItems,
		TotalQuantity:     totals.totals.TotalQuantity,
		SmallItems:        totals.totals.SmallItems,
		LargeItems:        totals.totals.LargeItems,
		CategoryBreakdown: byCategory,
		RecentItems:       recentItems,
	}, nil
}
