package animals

import "context"

// Service implementa las cinco operaciones del recurso sobre un
// Repository inyectado. No hay estado global: el wiring real vive
// en cmd/api/main.go y los tests inyectan el sustituto en memoria.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create valida el documento candidato y recién entonces lo persiste.
// Un documento que no cumple el esquema nunca llega al store.
func (s *Service) Create(ctx context.Context, in AnimalFields) (Animal, error) {
	in = in.normalized()
	if err := in.Validate(); err != nil {
		return Animal{}, err
	}
	return s.repo.Create(ctx, in.toAnimal())
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

// Replace aplica update de documento completo: se revalida el mismo
// esquema que en create y el resultado es el estado post-escritura.
func (s *Service) Replace(ctx context.Context, id string, in AnimalFields) (Animal, error) {
	in = in.normalized()
	if err := in.Validate(); err != nil {
		return Animal{}, err
	}
	return s.repo.Replace(ctx, id, in.toAnimal())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
