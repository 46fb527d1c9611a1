package memory

import (
	"context"
	"sort"
	"sync"

	"animals-api/internal/domain/animals"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnimalRepo es el sustituto en memoria del document store: genera ids
// con la misma sintaxis (hex de 24 caracteres) y devuelve los mismos
// errores centinela, para que los tests observen el contrato 400 vs 404
// real sin levantar un store.
type AnimalRepo struct {
	mu       sync.RWMutex
	byID     map[string]animals.Animal
	failWith error
}

func NewAnimalRepo() *AnimalRepo {
	return &AnimalRepo{
		byID: make(map[string]animals.Animal),
	}
}

// FailWith fuerza que toda operación posterior devuelva err, simulando
// un store caído. Con nil restaura el comportamiento normal.
func (r *AnimalRepo) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}

func (r *AnimalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return animals.Animal{}, r.failWith
	}

	a.ID = primitive.NewObjectID().Hex()
	r.byID[a.ID] = a
	return a, nil
}

func (r *AnimalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.failWith != nil {
		return nil, r.failWith
	}

	out := make([]animals.Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}

	// Orden estable por _id asc; como el hex arranca con timestamp,
	// coincide con el orden de inserción del store real.
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *AnimalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := checkID(id); err != nil {
		return animals.Animal{}, err
	}
	if r.failWith != nil {
		return animals.Animal{}, r.failWith
	}

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *AnimalRepo) Replace(ctx context.Context, id string, a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := checkID(id); err != nil {
		return animals.Animal{}, err
	}
	if r.failWith != nil {
		return animals.Animal{}, r.failWith
	}

	if _, ok := r.byID[id]; !ok {
		return animals.Animal{}, animals.ErrNotFound
	}

	a.ID = id
	r.byID[id] = a
	return a, nil
}

func (r *AnimalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := checkID(id); err != nil {
		return err
	}
	if r.failWith != nil {
		return r.failWith
	}

	if _, ok := r.byID[id]; !ok {
		return animals.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// checkID aplica la misma regla de sintaxis que el store real: lo que
// no parsea como ObjectID es ErrInvalidID, nunca ErrNotFound.
func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return animals.ErrInvalidID
	}
	return nil
}
