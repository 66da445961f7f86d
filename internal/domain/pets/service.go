package pets

import (
	"context"
	"errors"
	"strings"

	"petstore/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"module": "pets"}),
	}
}

type CreateInput struct {
	ID   int
	Name string
	Tag  string
}

// Add agrega la mascota tal cual al store (append-only).
// Ids repetidos se aceptan: en lookup gana el primero insertado.
func (s *Service) Add(ctx context.Context, in CreateInput) (Pet, error) {
	// name en blanco cuenta como ausente; lo demás se guarda sin tocar.
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:   in.ID,
		Name: in.Name,
		Tag:  in.Tag,
	}

	if err := s.repo.Add(ctx, p); err != nil {
		return Pet{}, err
	}

	s.log.Debug("pet added", map[string]any{"pet_id": p.ID})
	return p, nil
}

func (s *Service) FindByID(ctx context.Context, id int) (Pet, error) {
	return s.repo.FindByID(ctx, id)
}
