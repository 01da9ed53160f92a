package professional

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type mockRepo struct {
	profs map[uuid.UUID]*Professional
}

func newMockRepo() *mockRepo {
	return &mockRepo{profs: make(map[uuid.UUID]*Professional)}
}

func (m *mockRepo) Create(_ context.Context, p *Professional) error {
	p.ID = uuid.New()
	m.profs[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Professional, error) {
	p, ok := m.profs[id]
	if !ok {
		return nil, fmt.Errorf("professional not found: %s", id)
	}
	return p, nil
}

func (m *mockRepo) Update(_ context.Context, p *Professional) error {
	if _, ok := m.profs[p.ID]; !ok {
		return fmt.Errorf("professional not found: %s", p.ID)
	}
	m.profs[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.profs[id]; !ok {
		return fmt.Errorf("professional not found: %s", id)
	}
	delete(m.profs, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, activeOnly bool, limit, offset int) ([]*Professional, int, error) {
	var items []*Professional
	for _, p := range m.profs {
		if activeOnly && !p.Active {
			continue
		}
		items = append(items, p)
	}
	return items, len(items), nil
}

func TestServiceCreate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, zerolog.Nop())

	p := &Professional{Name: "Dra. Helena Costa"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !p.Active {
		t.Error("new professional should default to active")
	}
	if p.ID == uuid.Nil {
		t.Error("expected repository to assign an id")
	}
}

func TestServiceCreate_RequiresName(t *testing.T) {
	svc := NewService(newMockRepo(), zerolog.Nop())
	if err := svc.Create(context.Background(), &Professional{}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestServiceDeactivate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, zerolog.Nop())

	p := &Professional{Name: "Dr. Marcos Lima"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := svc.Deactivate(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if got.Active {
		t.Error("professional should be inactive")
	}
	if _, ok := repo.profs[p.ID]; !ok {
		t.Error("deactivation must not delete the row")
	}
}

func TestServiceDeactivate_NotFound(t *testing.T) {
	svc := NewService(newMockRepo(), zerolog.Nop())
	if _, err := svc.Deactivate(context.Background(), uuid.New()); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestServiceList_ActiveOnly(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, zerolog.Nop())
	ctx := context.Background()

	a := &Professional{Name: "A"}
	b := &Professional{Name: "B"}
	if err := svc.Create(ctx, a); err != nil {
		t.Fatal(err)
	}
	if err := svc.Create(ctx, b); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Deactivate(ctx, b.ID); err != nil {
		t.Fatal(err)
	}

	items, total, err := svc.List(ctx, true, 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ID != a.ID {
		t.Errorf("expected only the active professional, got total=%d", total)
	}
}
