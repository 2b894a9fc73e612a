// seed aplica scripts/schema.sql sobre la base de datos configurada: crea las tablas
// del inventario y siembra las categorías fijas (la API no expone mutaciones sobre ellas).
//
// Uso: go run ./cmd/seed [ruta/schema.sql]
// Por defecto busca scripts/schema.sql relativo al directorio actual.
// Idempotente: el script usa IF NOT EXISTS / ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudmoonocus/home-inventory/internal/infrastructure/postgres"
	"github.com/cloudmoonocus/home-inventory/pkg/config"
)

func main() {
	schemaPath := "scripts/schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	ddl, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer schema: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, string(ddl)); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Esquema aplicado y categorías sembradas.")
}
