package memory

import (
	"context"
	"sync"

	"petstore/internal/domain/pets"
)

// petRepo guarda las mascotas en orden de inserción.
// Un slice (no un map) porque se permiten ids repetidos y el lookup
// tiene que devolver el primero insertado.
type petRepo struct {
	mu    sync.RWMutex
	items []pets.Pet
}

// NewPetRepo crea el store con una copia propia del seed.
func NewPetRepo(seed ...pets.Pet) pets.Repository {
	items := make([]pets.Pet, len(seed), len(seed)+8)
	copy(items, seed)
	return &petRepo{items: items}
}

func (r *petRepo) FindByID(ctx context.Context, id int) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *petRepo) Add(ctx context.Context, p pets.Pet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, p)
	return nil
}

// Len es para tests/diagnóstico.
func (r *petRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
