// Command seed loads a default association with one category and two sample
// products. Running it repeatedly is safe: existing rows are left untouched.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/domain/entity"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/infrastructure/postgres"
	"github.com/HarshvardhanPondkule/InventoTrack/pkg/config"
	"github.com/HarshvardhanPondkule/InventoTrack/pkg/logger"
)

const (
	seedEmail = "default@association.com"
	seedName  = "Default Association"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	associationRepo := postgres.NewAssociationRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	association, err := associationRepo.GetByEmail(seedEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("look up seed association")
	}
	if association == nil {
		association = &entity.Association{
			ID:        uuid.New().String(),
			Name:      seedName,
			Email:     seedEmail,
			CreatedAt: time.Now(),
		}
		if err := associationRepo.Create(association); err != nil {
			log.Fatal().Err(err).Msg("create seed association")
		}
		log.Info().Str("email", seedEmail).Msg("association created")
	} else {
		log.Info().Str("email", seedEmail).Msg("association already present")
	}

	categories, err := categoryRepo.ListByAssociation(association.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("list categories")
	}
	var pipes *entity.Category
	for _, c := range categories {
		if c.Name == "pipes" {
			pipes = c
			break
		}
	}
	if pipes == nil {
		now := time.Now()
		pipes = &entity.Category{
			ID:            uuid.New().String(),
			AssociationID: association.ID,
			Name:          "pipes",
			Description:   "Pipes and fittings",
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := categoryRepo.Create(pipes); err != nil {
			log.Fatal().Err(err).Msg("create seed category")
		}
		log.Info().Str("category", pipes.Name).Msg("category created")
	}

	products, err := productRepo.ListByAssociation(association.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("list products")
	}
	existing := make(map[string]bool, len(products))
	for _, p := range products {
		existing[p.Name] = true
	}

	samples := []*entity.Product{
		{
			Name:        "Steel Pipe",
			Description: "Galvanized steel pipe, 2 inch",
			Price:       decimal.NewFromInt(120),
			Quantity:    10,
			Unit:        "meters",
		},
		{
			Name:        "PVC Pipe",
			Description: "PVC pressure pipe, 2 inch",
			Price:       decimal.NewFromInt(60),
			Quantity:    5,
			Unit:        "meters",
		},
	}
	for _, p := range samples {
		if existing[p.Name] {
			log.Info().Str("product", p.Name).Msg("product already present")
			continue
		}
		now := time.Now()
		p.ID = uuid.New().String()
		p.AssociationID = association.ID
		p.CategoryID = pipes.ID
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Msg("create seed product")
		}
		log.Info().Str("product", p.Name).Msg("product created")
	}

	log.Info().Msg("seed complete")
}
