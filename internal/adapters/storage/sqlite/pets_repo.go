package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petstore/internal/domain/pets"
)

type PetsRepo struct {
	DB *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{DB: db}
}

// Seed inserta el set inicial solo si la tabla está vacía.
func (s *PetsRepo) Seed(ctx context.Context, seed ...pets.Pet) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&n); err != nil {
		return fmt.Errorf("sqlite: seed count: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, p := range seed {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pets (id, name, tag) VALUES (?, ?, ?)`,
			p.ID, p.Name, nullTag(p.Tag),
		); err != nil {
			return fmt.Errorf("sqlite: seed insert: %w", err)
		}
	}
	return tx.Commit()
}

func (s *PetsRepo) Add(ctx context.Context, p pets.Pet) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO pets (id, name, tag) VALUES (?, ?, ?)`,
		p.ID, p.Name, nullTag(p.Tag),
	)
	if err != nil {
		return fmt.Errorf("sqlite: add pet: %w", err)
	}
	return nil
}

func (s *PetsRepo) FindByID(ctx context.Context, id int) (pets.Pet, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT id, name, tag FROM pets WHERE id = ? ORDER BY seq ASC LIMIT 1`, id,
	)

	var p pets.Pet
	var tag sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &tag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("sqlite: find pet: %w", err)
	}
	p.Tag = tag.String
	return p, nil
}

func nullTag(tag string) sql.NullString {
	return sql.NullString{String: tag, Valid: tag != ""}
}
