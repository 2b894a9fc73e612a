package postgres

import (
	"context"
	"fmt"

	"github.com/cloudmoonocus/home-inventory/internal/domain/entity"
	"github.com/cloudmoonocus/home-inventory/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para las estadísticas del inventario.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// Totals devuelve los agregados globales en una sola consulta.
// COALESCE garantiza suma 0 (no NULL) cuando la tabla está vacía.
func (r *StatsRepo) Totals(ctx context.Context) (repository.InventoryTotals, error) {
	const query = `
	SELECT
	    COUNT(*)                                         AS total_items,
	    COALESCE(SUM(quantity), 0)                       AS total_quantity,
	    COUNT(*) FILTER (WHERE size_type = 'small')      AS small_items,
	    COUNT(*) FILTER (WHERE size_type = 'large')      AS large_items
	FROM items`

	var t repository.InventoryTotals
	err := r.q.QueryRow(ctx, query).
		Scan(&t.TotalItems, &t.TotalQuantity, &t.SmallItems, &t.LargeItems)
	if err != nil {
		return repository.InventoryTotals{}, fmt.Errorf("stats.Totals: %w", err)
	}
	return t, nil
}

// CategoryBreakdown agrupa cantidad de artículos y unidades por categoría.
// El LEFT JOIN parte de categories para incluir también las categorías sin artículos.
func (r *StatsRepo) CategoryBreakdown(ctx context.Context) ([]repository.CategoryUsage, error) {
	const query = `
	SELECT
	    c.name,
	    c.icon,
	    COUNT(i.id)                   AS count,
	    COALESCE(SUM(i.quantity), 0)  AS total_quantity
	FROM categories c
	LEFT JOIN items i ON c.id = i.category_id
	GROUP BY c.id, c.name, c.icon
	ORDER BY count DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.CategoryBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryUsage
	for rows.Next() {
		var row repository.CategoryUsage
		if err := rows.Scan(&row.Name, &row.Icon, &row.Count, &row.Quantity); err != nil {
			return nil, fmt.Errorf("stats.CategoryBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats.CategoryBreakdown rows: %w", err)
	}
	if results == nil {
		results = []repository.CategoryUsage{}
	}
	return results, nil
}

// RecentItems devuelve los `limit` artículos creados más recientemente, con su categoría.
func (r *StatsRepo) RecentItems(ctx context.Context, limit int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		LEFT JOIN categories c ON i.category_id = c.id
		ORDER BY i.created_at DESC
		LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.RecentItems: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("stats.RecentItems scan: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
