// seed crea el esquema (DDL idempotente) y carga datos iniciales: un usuario
// admin y un set de categorías y productos de demostración.
//
// Uso: go run ./cmd/seed
// Variables: las mismas de la API (DATABASE_URL o DB_*), más opcionalmente
// SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD (por defecto admin@almacen.local / admin123).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fail("migrar esquema: %v", err)
	}
	fmt.Println("esquema creado/verificado")

	if err := seedAdmin(pool); err != nil {
		fail("seed admin: %v", err)
	}
	if err := seedDemo(pool); err != nil {
		fail("seed demo: %v", err)
	}
	fmt.Println("seed completado")
}

// seedAdmin crea el usuario administrador si no existe.
func seedAdmin(q postgres.Querier) error {
	email := envOr("SEED_ADMIN_EMAIL", "admin@almacen.local")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")

	userRepo := postgres.NewUserRepository(q)
	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Printf("admin %s ya existe, omitiendo\n", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	if err := userRepo.Create(&entity.User{
		ID:           uuid.New().String(),
		Name:         "Administrador",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return err
	}
	fmt.Printf("admin %s creado\n", email)
	return nil
}

// seedDemo inserta categorías y productos de ejemplo (solo si no hay categorías).
func seedDemo(q postgres.Querier) error {
	categoryRepo := postgres.NewCategoryRepository(q)
	productRepo := postgres.NewProductRepository(q)

	existing, total, err := categoryRepo.List(repository.CategoryListParams{Limit: 1})
	if err != nil {
		return err
	}
	if total > 0 || len(existing) > 0 {
		fmt.Println("ya hay categorías, omitiendo datos demo")
		return nil
	}

	now := time.Now()
	demo := []struct {
		category string
		products []demoProduct
	}{
		{"Electrónica", []demoProduct{
			{"Teclado mecánico", "189900.00", 25},
			{"Mouse inalámbrico", "74900.00", 8},
		}},
		{"Papelería", []demoProduct{
			{"Resma carta 500 hojas", "18500.00", 120},
			{"Marcador permanente", "3200.00", 0},
		}},
	}

	for _, d := range demo {
		cat := &entity.Category{
			ID:        uuid.New().String(),
			Name:      d.category,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := categoryRepo.Create(cat); err != nil {
			return err
		}
		for _, p := range d.products {
			price, err := decimal.NewFromString(p.price)
			if err != nil {
				return err
			}
			if err := productRepo.Create(&entity.Product{
				ID:                uuid.New().String(),
				Name:              p.name,
				Price:             price,
				Quantity:          p.quantity,
				LowStockThreshold: entity.DefaultLowStockThreshold,
				CategoryID:        cat.ID,
				CreatedAt:         now,
				UpdatedAt:         now,
			}); err != nil {
				return err
			}
		}
	}
	fmt.Println("datos demo insertados")
	return nil
}

type demoProduct struct {
	name     string
	price    string
	quantity int
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
