package pets

import "context"

// Repository es el store de mascotas.
// - FindByID devuelve el primer match en orden de inserción o ErrNotFound.
// - Add agrega al final; NO valida ids duplicados.
type Repository interface {
	FindByID(ctx context.Context, id int) (Pet, error)
	Add(ctx context.Context, p Pet) error
}
