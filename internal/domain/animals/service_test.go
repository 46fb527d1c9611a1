package animals

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Animal
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) (Animal, error) {
	a.ID = primitive.NewObjectID().Hex()
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) Replace(ctx context.Context, id string, a Animal) (Animal, error) {
	if _, ok := r.byID[id]; !ok {
		return Animal{}, ErrNotFound
	}
	a.ID = id
	r.byID[id] = a
	return a, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func intp(n int) *int { return &n }

// -------------------------
// Tests
// -------------------------

func TestService_Create_PersistsAndAssignsID(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a, err := svc.Create(context.Background(), AnimalFields{
		Name:    "  Simba ",
		Species: "Lion",
		Age:     intp(3),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := primitive.ObjectIDFromHex(a.ID); err != nil {
		t.Fatalf("expected hex id from store, got %q", a.ID)
	}
	if a.Name != "Simba" {
		t.Fatalf("expected trimmed name, got %q", a.Name)
	}
	if a.Species != "Lion" || a.Age != 3 {
		t.Fatalf("unexpected fields: %+v", a)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 persisted doc, got %d", len(repo.byID))
	}
}

func TestService_Create_RejectsIncompleteDocument(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	inputs := []AnimalFields{
		{Species: "Lion", Age: intp(3)},
		{Name: "Simba", Age: intp(3)},
		{Name: "Simba", Species: "Lion"},
	}
	for _, in := range inputs {
		_, err := svc.Create(context.Background(), in)
		if err == nil {
			t.Fatalf("expected error for %+v", in)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError for %+v, got %T", in, err)
		}
	}

	// nada llegó al store
	if len(repo.byID) != 0 {
		t.Fatalf("invalid docs must not persist, repo has %d", len(repo.byID))
	}
}

func TestService_Create_BlankStringsCountAsMissing(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), AnimalFields{
		Name:    "   ",
		Species: "Lion",
		Age:     intp(3),
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError for blank name, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "name" {
		t.Fatalf("expected single error on name, got %#v", verr.Fields)
	}
}

func TestService_Create_ZeroAgeIsValid(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a, err := svc.Create(context.Background(), AnimalFields{
		Name:    "Nemo",
		Species: "Fish",
		Age:     intp(0),
	})
	if err != nil {
		t.Fatalf("expected age 0 accepted, got %v", err)
	}
	if a.Age != 0 {
		t.Fatalf("expected age 0, got %d", a.Age)
	}
}

func TestService_Replace_RevalidatesFullDocument(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), AnimalFields{
		Name:    "Simba",
		Species: "Lion",
		Age:     intp(3),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// reemplazo inválido: no toca el documento persistido
	_, err = svc.Replace(context.Background(), created.ID, AnimalFields{
		Name: "Rajah",
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError on invalid replace, got %v", err)
	}
	if repo.byID[created.ID].Species != "Lion" {
		t.Fatalf("invalid replace must not persist, got %+v", repo.byID[created.ID])
	}

	// reemplazo válido: mismo id, documento nuevo completo
	updated, err := svc.Replace(context.Background(), created.ID, AnimalFields{
		Name:    "Rajah",
		Species: "Tiger",
		Age:     intp(4),
	})
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected id %s kept, got %s", created.ID, updated.ID)
	}
	if updated.Name != "Rajah" || updated.Species != "Tiger" || updated.Age != 4 {
		t.Fatalf("unexpected post-replace state: %+v", updated)
	}
}

func TestService_Replace_MissingDocument(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Replace(context.Background(), primitive.NewObjectID().Hex(), AnimalFields{
		Name:    "Rajah",
		Species: "Tiger",
		Age:     intp(4),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
