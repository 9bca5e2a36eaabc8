package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type mockRepository struct {
	items     map[string]*Item
	created   []*Item
	updated   []*Item
	createErr error
	findErr   error
}

func newMockRepository(items ...*Item) *mockRepository {
	repo := &mockRepository{items: make(map[string]*Item)}
	for _, item := range items {
		repo.items[item.PublicID] = item
	}
	return repo
}

func (m *mockRepository) Create(_ context.Context, item *Item) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, item)
	m.items[item.PublicID] = item
	return nil
}

func (m *mockRepository) Update(_ context.Context, item *Item) error {
	m.updated = append(m.updated, item)
	m.items[item.PublicID] = item
	return nil
}

func (m *mockRepository) Delete(_ context.Context, _, publicID string) error {
	delete(m.items, publicID)
	return nil
}

func (m *mockRepository) FindByOwner(_ context.Context, ownerID string) ([]*Item, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []*Item
	for _, item := range m.items {
		if item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockRepository) FindByPublicID(_ context.Context, ownerID, publicID string) (*Item, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	item, ok := m.items[publicID]
	if !ok || item.OwnerID != ownerID {
		return nil, errors.New("item not found")
	}
	return item, nil
}

type mockModel struct {
	configured bool
	text       string
	textErr    error
	imageText  string
	imageErr   error
}

func (m *mockModel) GenerateText(_ context.Context, _, _ string) (string, error) {
	return m.text, m.textErr
}

func (m *mockModel) GenerateFromImage(_ context.Context, _, _ string) (string, error) {
	return m.imageText, m.imageErr
}

func (m *mockModel) Configured() bool { return m.configured }

func newTestService(repo Repository, model Model) *Service {
	return NewService(repo, model, zerolog.Nop())
}

func TestAddItemRequiresName(t *testing.T) {
	svc := newTestService(newMockRepository(), &mockModel{})

	if _, err := svc.AddItem(context.Background(), "user_1", "   ", ""); err == nil {
		t.Fatal("expected validation error for blank name")
	}
}

func TestAddItemTrimsFields(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo, &mockModel{})

	item, err := svc.AddItem(context.Background(), "user_1", "  Rusty Gauge  ", "  Analog dial.  ")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.Name != "Rusty Gauge" || item.Description != "Analog dial." {
		t.Errorf("fields not trimmed: %+v", item)
	}
	if len(repo.created) != 1 {
		t.Fatalf("item not persisted")
	}
	if item.OwnerID != "user_1" {
		t.Errorf("OwnerID = %q", item.OwnerID)
	}
}

func TestAddImageEnforcesCap(t *testing.T) {
	full := &Item{PublicID: "item_1", OwnerID: "user_1", Name: "Visor",
		Images: []string{"a", "b", "c"}}
	svc := newTestService(newMockRepository(full), &mockModel{})

	if _, err := svc.AddImage(context.Background(), "user_1", "item_1", "data:image/png;base64,dd"); err == nil {
		t.Fatal("expected error once image cap is reached")
	}
}

func TestAddImageAppends(t *testing.T) {
	item := &Item{PublicID: "item_1", OwnerID: "user_1", Name: "Visor", Images: []string{"a"}}
	repo := newMockRepository(item)
	svc := newTestService(repo, &mockModel{})

	updated, err := svc.AddImage(context.Background(), "user_1", "item_1", "b")
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if len(updated.Images) != 2 || updated.Images[1] != "b" {
		t.Errorf("images = %v", updated.Images)
	}
	if len(repo.updated) != 1 {
		t.Error("update not persisted")
	}
}

func TestAddImageRequiresData(t *testing.T) {
	item := &Item{PublicID: "item_1", OwnerID: "user_1", Name: "Visor"}
	svc := newTestService(newMockRepository(item), &mockModel{})

	if _, err := svc.AddImage(context.Background(), "user_1", "item_1", "  "); err == nil {
		t.Fatal("expected error for empty image data")
	}
}

func TestGenerateDescriptionUnconfiguredServesMock(t *testing.T) {
	item := &Item{PublicID: "item_1", OwnerID: "user_1", Name: "Visor"}
	repo := newMockRepository(item)
	svc := newTestService(repo, &mockModel{configured: false})

	updated, err := svc.GenerateDescription(context.Background(), "user_1", "item_1")
	if err != nil {
		t.Fatalf("GenerateDescription: %v", err)
	}
	if updated.Description != mockDescription {
		t.Errorf("description = %q, want mock", updated.Description)
	}
	if len(repo.updated) != 1 {
		t.Error("mock description must still be persisted")
	}
}

func TestGenerateDescriptionModelFailureDegrades(t *testing.T) {
	item := &Item{PublicID: "item_1", OwnerID: "user_1", Name: "Visor"}
	repo := newMockRepository(item)
	svc := newTestService(repo, &mockModel{configured: true, textErr: errors.New("timeout")})

	updated, err := svc.GenerateDescription(context.Background(), "user_1", "item_1")
	if err != nil {
		t.Fatalf("model failure must not surface: %v", err)
	}
	if updated.Description != failedDescription {
		t.Errorf("description = %q, want failure text", updated.Description)
	}
}

func TestGenerateDescriptionTrimsModelOutput(t *testing.T) {
	item := &Item{PublicID: "item_1", OwnerID: "user_1", Name: "Visor"}
	repo := newMockRepository(item)
	svc := newTestService(repo, &mockModel{configured: true, text: "\n  Sharp chrome optics.  \n"})

	updated, err := svc.GenerateDescription(context.Background(), "user_1", "item_1")
	if err != nil {
		t.Fatalf("GenerateDescription: %v", err)
	}
	if updated.Description != "Sharp chrome optics." {
		t.Errorf("description = %q", updated.Description)
	}
}

func TestIdentifyFromImageRequiresPhoto(t *testing.T) {
	svc := newTestService(newMockRepository(), &mockModel{})

	if _, err := svc.IdentifyFromImage(context.Background(), "user_1", ""); err == nil {
		t.Fatal("expected error for missing photo")
	}
}

func TestIdentifyFromImageUnconfiguredServesMock(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo, &mockModel{configured: false})

	item, err := svc.IdentifyFromImage(context.Background(), "user_1", "data:image/png;base64,xx")
	if err != nil {
		t.Fatalf("IdentifyFromImage: %v", err)
	}
	if item.Name != mockItemName || item.Description != mockDescription {
		t.Errorf("unexpected mock identification: %+v", item)
	}
	if len(item.Images) != 1 || item.Images[0] != "data:image/png;base64,xx" {
		t.Errorf("photo not attached: %v", item.Images)
	}
}

func TestIdentifyFromImageParsesFencedJSON(t *testing.T) {
	repo := newMockRepository()
	model := &mockModel{
		configured: true,
		imageText:  "```json\n{\"name\": \"Neon Visor\", \"description\": \"Chrome optics.\"}\n```",
	}
	svc := newTestService(repo, model)

	item, err := svc.IdentifyFromImage(context.Background(), "user_1", "data:image/png;base64,xx")
	if err != nil {
		t.Fatalf("IdentifyFromImage: %v", err)
	}
	if item.Name != "Neon Visor" || item.Description != "Chrome optics." {
		t.Errorf("parsed identification = %+v", item)
	}
}

func TestIdentifyFromImageMalformedOutputFallsBack(t *testing.T) {
	repo := newMockRepository()
	model := &mockModel{configured: true, imageText: "I can't tell what this is."}
	svc := newTestService(repo, model)

	item, err := svc.IdentifyFromImage(context.Background(), "user_1", "data:image/png;base64,xx")
	if err != nil {
		t.Fatalf("IdentifyFromImage: %v", err)
	}
	if item.Name != mockItemName {
		t.Errorf("name = %q, want mock fallback", item.Name)
	}
}

func TestIdentifyFromImageModelFailureFallsBack(t *testing.T) {
	repo := newMockRepository()
	model := &mockModel{configured: true, imageErr: errors.New("vision endpoint down")}
	svc := newTestService(repo, model)

	item, err := svc.IdentifyFromImage(context.Background(), "user_1", "data:image/png;base64,xx")
	if err != nil {
		t.Fatalf("model failure must not surface: %v", err)
	}
	if item.Name != mockItemName {
		t.Errorf("name = %q, want mock fallback", item.Name)
	}
	if len(repo.created) != 1 {
		t.Error("item must still be created")
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose wrapped", `Sure thing: {"a":1} hope that helps`, `{"a":1}`},
		{"no json", "nothing here", "nothing here"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.raw); got != tc.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
