package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petstore/internal/domain/pets"
)

// seq fija el orden de inserción; id NO es único.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS pets (
		seq  BIGSERIAL PRIMARY KEY,
		id   INTEGER NOT NULL,
		name TEXT NOT NULL,
		tag  TEXT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS pets_id_seq_idx ON pets (id, seq)`,
}

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: migrate: %w", err)
		}
	}
	return nil
}

// Seed inserta el set inicial solo si la tabla está vacía.
// Va en una transacción para no duplicar el seed si arrancan dos procesos.
func (r *PetsRepo) Seed(ctx context.Context, seed ...pets.Pet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `LOCK TABLE pets IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("postgres: seed lock: %w", err)
	}

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&n); err != nil {
		return fmt.Errorf("postgres: seed count: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, p := range seed {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pets (id, name, tag) VALUES ($1, $2, $3)`,
			p.ID, p.Name, toNullString(p.Tag),
		); err != nil {
			return fmt.Errorf("postgres: seed insert: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PetsRepo) Add(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pets (id, name, tag) VALUES ($1, $2, $3)`,
		p.ID, p.Name, toNullString(p.Tag),
	)
	if err != nil {
		return fmt.Errorf("postgres: add pet: %w", err)
	}
	return nil
}

func (r *PetsRepo) FindByID(ctx context.Context, id int) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, tag
		FROM pets
		WHERE id = $1
		ORDER BY seq ASC
		LIMIT 1
	`, id)

	var p pets.Pet
	var tag sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &tag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("postgres: find pet: %w", err)
	}
	p.Tag = tag.String

	return p, nil
}

// tag vacío se guarda como NULL: "sin tag"
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
