package toys

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type testRepo struct {
	byID  map[string]Toy
	cats  map[string]bool
	links map[[2]string]bool
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Toy{}, cats: map[string]bool{}, links: map[[2]string]bool{}}
}

func (r *testRepo) Create(ctx context.Context, t Toy) error {
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) Update(ctx context.Context, t Toy) error {
	if _, ok := r.byID[t.ID]; !ok {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Toy, error) {
	t, ok := r.byID[id]
	if !ok {
		return Toy{}, ErrNotFound
	}
	return t, nil
}

func (r *testRepo) List(ctx context.Context) ([]Toy, error) {
	out := make([]Toy, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out, nil
}

func (r *testRepo) ListByCat(ctx context.Context, catID string) ([]Toy, error) {
	out := make([]Toy, 0)
	for _, t := range r.byID {
		if r.links[[2]string{catID, t.ID}] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *testRepo) ListNotOnCat(ctx context.Context, catID string) ([]Toy, error) {
	out := make([]Toy, 0)
	for _, t := range r.byID {
		if !r.links[[2]string{catID, t.ID}] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *testRepo) Associate(ctx context.Context, catID, toyID string) error {
	if !r.cats[catID] {
		return ErrCatNotFound
	}
	if _, ok := r.byID[toyID]; !ok {
		return ErrNotFound
	}
	r.links[[2]string{catID, toyID}] = true
	return nil
}

func TestService_CreateAndUpdate(t *testing.T) {
	svc := NewService(newTestRepo())
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	toy, err := svc.Create(ctx, Input{Name: " Ball ", Color: "red"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toy.Name != "Ball" || !toy.CreatedAt.Equal(now) {
		t.Fatalf("unexpected toy: %+v", toy)
	}

	later := now.Add(time.Minute)
	svc.now = func() time.Time { return later }
	blue := " blue "
	updated, err := svc.Update(ctx, toy.ID, UpdateInput{Color: &blue})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// solo cambia color; name queda como estaba
	if updated.Name != "Ball" || updated.Color != "blue" || !updated.UpdatedAt.Equal(later) || !updated.CreatedAt.Equal(now) {
		t.Fatalf("unexpected update: %+v", updated)
	}

	empty := ""
	if _, err := svc.Update(ctx, toy.ID, UpdateInput{Name: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := svc.Update(ctx, "missing", UpdateInput{Color: &blue}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Validation(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	bad := []Input{
		{Name: "", Color: "red"},
		{Name: "Ball", Color: " "},
		{Name: strings.Repeat("n", NameMaxLen+1), Color: "red"},
		{Name: "Ball", Color: strings.Repeat("c", ColorMaxLen+1)},
	}
	for _, in := range bad {
		if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestService_Associate(t *testing.T) {
	repo := newTestRepo()
	repo.cats["cat-1"] = true
	svc := NewService(repo)
	ctx := context.Background()

	ball, _ := svc.Create(ctx, Input{Name: "Ball", Color: "red"})
	_, _ = svc.Create(ctx, Input{Name: "Mouse", Color: "grey"})

	for i := 0; i < 2; i++ {
		if err := svc.Associate(ctx, "cat-1", ball.ID); err != nil {
			t.Fatalf("associate #%d: %v", i+1, err)
		}
	}

	has, _ := svc.ListByCat(ctx, "cat-1")
	missing, _ := svc.ListNotOnCat(ctx, "cat-1")
	if len(has) != 1 || len(missing) != 1 || missing[0].Name != "Mouse" {
		t.Fatalf("unexpected partition has=%+v missing=%+v", has, missing)
	}

	if err := svc.Associate(ctx, "", ball.ID); !errors.Is(err, ErrCatNotFound) {
		t.Fatalf("expected ErrCatNotFound, got %v", err)
	}
	if err := svc.Associate(ctx, "cat-1", " "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Associate(ctx, "cat-9", ball.ID); !errors.Is(err, ErrCatNotFound) {
		t.Fatalf("expected ErrCatNotFound for unknown cat, got %v", err)
	}
}
