package animals

import (
	"context"
	"errors"
)

// Errores centinela que todo adapter de storage debe traducir.
// El handler los usa para distinguir 400 (id malformado, el cliente
// puede corregirlo) de 404 (id bien formado sin documento).
var (
	ErrNotFound  = errors.New("animal not found")
	ErrInvalidID = errors.New("invalid id format")
)

// Repository es el puerto hacia el document store.
// Create asigna el ID exactamente una vez y devuelve la entidad persistida.
// Replace reescribe el documento completo (nunca merge parcial) y devuelve
// el estado posterior a la escritura.
type Repository interface {
	Create(ctx context.Context, a Animal) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
	GetByID(ctx context.Context, id string) (Animal, error)
	Replace(ctx context.Context, id string, a Animal) (Animal, error)
	Delete(ctx context.Context, id string) error
}
