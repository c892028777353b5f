package cats

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cat-collector/internal/domain/access"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]Cat
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Cat{}}
}

func (r *testRepo) Create(ctx context.Context, c Cat) error {
	if _, ok := r.byID[c.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, c Cat) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Cat, error) {
	c, ok := r.byID[id]
	if !ok {
		return Cat{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error) {
	out := make([]Cat, 0)
	for _, id := range r.order {
		if c, ok := r.byID[id]; ok && c.OwnerUserID == ownerUserID {
			out = append(out, c)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func newTestService() (*Service, time.Time) {
	svc := NewService(newTestRepo())
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, now
}

func TestService_Create_SetsOwnerAndTrims(t *testing.T) {
	svc, now := newTestService()

	c, err := svc.Create(context.Background(), "user-a", CreateInput{
		Name:        "  Felix ",
		Breed:       "tabby",
		Description: " naranja ",
		Age:         3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.OwnerUserID != "user-a" || c.Name != "Felix" || c.Description != "naranja" {
		t.Fatalf("unexpected cat: %+v", c)
	}
	if !c.CreatedAt.Equal(now) || !c.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps = now, got %v / %v", c.CreatedAt, c.UpdatedAt)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name  string
		owner string
		in    CreateInput
	}{
		{"no owner", "", CreateInput{Name: "Felix", Breed: "tabby"}},
		{"no name", "u", CreateInput{Breed: "tabby"}},
		{"no breed", "u", CreateInput{Name: "Felix"}},
		{"long name", "u", CreateInput{Name: strings.Repeat("n", NameMaxLen+1), Breed: "tabby"}},
		{"long breed", "u", CreateInput{Name: "Felix", Breed: strings.Repeat("b", BreedMaxLen+1)}},
		{"no description", "u", CreateInput{Name: "Felix", Breed: "tabby", Age: 3}},
		{"blank description", "u", CreateInput{Name: "Felix", Breed: "tabby", Description: "   "}},
		{"long description", "u", CreateInput{Name: "Felix", Breed: "tabby", Description: strings.Repeat("d", DescriptionMaxLen+1)}},
		{"negative age", "u", CreateInput{Name: "Felix", Breed: "tabby", Age: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.owner, tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	// límites exactos son válidos (en runas, no bytes)
	_, err := svc.Create(ctx, "u", CreateInput{
		Name:        strings.Repeat("ñ", NameMaxLen),
		Breed:       "tabby",
		Description: strings.Repeat("d", DescriptionMaxLen),
	})
	if err != nil {
		t.Fatalf("expected limits to be valid, got %v", err)
	}
}

func TestService_Update_OnlyEditableFields(t *testing.T) {
	svc, now := newTestService()
	ctx := context.Background()

	c, _ := svc.Create(ctx, "user-a", CreateInput{Name: "Felix", Breed: "tabby", Description: "gordo", Age: 3})

	later := now.Add(time.Hour)
	svc.now = func() time.Time { return later }

	desc := "lazy"
	age := 4
	got, err := svc.Update(ctx, c.ID, UpdateInput{Description: &desc, Age: &age})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Felix" || got.Breed != "tabby" || got.Description != "lazy" || got.Age != 4 {
		t.Fatalf("unexpected cat: %+v", got)
	}
	if !got.UpdatedAt.Equal(later) || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", got)
	}

	empty := ""
	if _, err := svc.Update(ctx, c.ID, UpdateInput{Breed: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty breed, got %v", err)
	}
	if _, err := svc.Update(ctx, c.ID, UpdateInput{Description: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty description, got %v", err)
	}
	if _, err := svc.Update(ctx, "missing", UpdateInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ListByOwner(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, "A", CreateInput{Name: "Felix", Breed: "tabby", Description: "gordo"})
	_, _ = svc.Create(ctx, "B", CreateInput{Name: "Felix", Breed: "siamese", Description: "flaco"})

	got, err := svc.ListByOwner(ctx, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("expected only A's cat, got %+v", got)
	}

	none, _ := svc.ListByOwner(ctx, " ")
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", none)
	}
}

func TestService_OwnerOf(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, _ := svc.Create(ctx, "user-a", CreateInput{Name: "Felix", Breed: "tabby", Description: "gordo"})

	owner, err := svc.OwnerOf(ctx, c.ID)
	if err != nil || owner != "user-a" {
		t.Fatalf("expected user-a, got %q err=%v", owner, err)
	}

	if _, err := svc.OwnerOf(ctx, "missing"); !errors.Is(err, access.ErrNotFound) {
		t.Fatalf("expected access.ErrNotFound, got %v", err)
	}

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.OwnerOf(ctx, c.ID); !errors.Is(err, access.ErrNotFound) {
		t.Fatalf("expected access.ErrNotFound after delete, got %v", err)
	}
}
