// Package storage elige el adapter de pets.Repository según la configuración.
package storage

import (
	"context"
	"fmt"

	"petstore/internal/adapters/storage/memory"
	pg "petstore/internal/adapters/storage/postgres"
	"petstore/internal/adapters/storage/sqlite"
	"petstore/internal/config"
	"petstore/internal/domain/pets"
)

// Open devuelve el repo ya sembrado y una función para liberar recursos.
func Open(ctx context.Context, cfg config.StoreConfig) (pets.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverMemory, "":
		return memory.NewPetRepo(pets.SeedPets()...), noop, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo := sqlite.NewPetsRepo(db)
		if err := repo.Seed(ctx, pets.SeedPets()...); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		repo := pg.NewPetsRepo(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		if err := repo.Seed(ctx, pets.SeedPets()...); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
