package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cloudmoonocus/home-inventory/internal/domain"
	"github.com/cloudmoonocus/home-inventory/internal/domain/entity"
	"github.com/cloudmoonocus/home-inventory/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// itemColumns columnas de un artículo junto con el nombre e icono de su categoría.
const itemColumns = `
	i.id, i.name, i.category_id, i.size_type, i.quantity,
	i.source, i.location, i.notes, i.purchase_date,
	i.created_at, i.updated_at,
	c.name AS category_name, c.icon AS category_icon`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// buildItemPredicates arma la cláusula WHERE del listado: acumula pares
// (predicado con placeholder posicional, valor ligado) y los une con AND.
// Los valores nunca se interpolan en el texto de la consulta.
func buildItemPredicates(f repository.ItemFilter) (string, []any) {
	var clauses []string
	var args []any

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(i.name ILIKE $%d OR i.location ILIKE $%d OR i.source ILIKE $%d OR i.notes ILIKE $%d)",
			n, n, n, n))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		clauses = append(clauses, fmt.Sprintf("i.category_id = $%d", len(args)))
	}
	if f.SizeType.Valid() {
		args = append(args, string(f.SizeType))
		clauses = append(clauses, fmt.Sprintf("i.size_type = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// List devuelve los artículos que pasan el filtro, con su categoría resuelta por LEFT JOIN,
// ordenados por updated_at descendente (los tocados más recientemente primero).
// Sin paginación: el listado es el inventario completo de un hogar.
func (r *ItemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	where, args := buildItemPredicates(filter)
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		LEFT JOIN categories c ON i.category_id = c.id` +
		where + `
		ORDER BY i.updated_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Create persiste un artículo nuevo. ID, created_at y updated_at los asigna el servidor
// y se escriben de vuelta en la entidad vía RETURNING.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (name, category_id, size_type, quantity, source, location, purchase_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		item.Name, item.CategoryID, item.SizeType, item.Quantity,
		item.Source, item.Location, item.PurchaseDate, item.Notes,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update reemplaza todos los campos mutables del artículo y refresca updated_at.
// created_at no se toca. Devuelve domain.ErrNotFound si el ID no existe.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, category_id = $3, size_type = $4, quantity = $5,
		    source = $6, location = $7, purchase_date = $8, notes = $9,
		    updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		item.ID, item.Name, item.CategoryID, item.SizeType, item.Quantity,
		item.Source, item.Location, item.PurchaseDate, item.Notes,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID. Devuelve domain.ErrNotFound si no había fila.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanItem lee una fila con itemColumns.
func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.Name, &it.CategoryID, &it.SizeType, &it.Quantity,
		&it.Source, &it.Location, &it.Notes, &it.PurchaseDate,
		&it.CreatedAt, &it.UpdatedAt,
		&it.CategoryName, &it.CategoryIcon,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
