package inventory

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"peerweb/trader-api/internal/utils/platformerrors"
)

// Model is the slice of the model provider the inventory features use.
type Model interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
	GenerateFromImage(ctx context.Context, prompt, imageDataURI string) (string, error)
	Configured() bool
}

// Canned outputs for when the model provider is unavailable.
const (
	mockDescription = "A salvaged piece of old-net tech. Scuffed casing, solid internals. The kind of gear that changes hands fast on the grid."
	mockItemName    = "Unidentified Salvage"

	failedDescription = "Description feed glitched mid-generation. Give it another shot."
)

// Service implements the inventory operations, delegating metadata
// generation to the model provider when one is configured.
type Service struct {
	repo  Repository
	model Model
	log   zerolog.Logger
}

func NewService(repo Repository, model Model, log zerolog.Logger) *Service {
	return &Service{
		repo:  repo,
		model: model,
		log:   log.With().Str("component", "inventory-service").Logger(),
	}
}

// ListItems returns the owner's items.
func (s *Service) ListItems(ctx context.Context, ownerID string) ([]*Item, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// GetItem returns a single owner-scoped item.
func (s *Service) GetItem(ctx context.Context, ownerID, publicID string) (*Item, error) {
	return s.repo.FindByPublicID(ctx, ownerID, publicID)
}

// AddItem creates a new item for the owner.
func (s *Service) AddItem(ctx context.Context, ownerID, name, description string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "item name is required", nil, "")
	}

	item, err := NewItem(ownerID, name, strings.TrimSpace(description), nil)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "create item")
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// AddImage attaches a photo data URI to an item, up to MaxImages.
func (s *Service) AddImage(ctx context.Context, ownerID, publicID, imageDataURI string) (*Item, error) {
	if strings.TrimSpace(imageDataURI) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "image data is required", nil, "")
	}

	item, err := s.repo.FindByPublicID(ctx, ownerID, publicID)
	if err != nil {
		return nil, err
	}
	if len(item.Images) >= MaxImages {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "item already has the maximum number of images", nil, "")
	}

	item.Images = append(item.Images, imageDataURI)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an owner's item.
func (s *Service) DeleteItem(ctx context.Context, ownerID, publicID string) error {
	return s.repo.Delete(ctx, ownerID, publicID)
}

// GenerateDescription produces a sales description for an item and
// persists it. Model failures degrade to a fixed failure text rather
// than an error; an unconfigured model serves the mock text.
func (s *Service) GenerateDescription(ctx context.Context, ownerID, publicID string) (*Item, error) {
	item, err := s.repo.FindByPublicID(ctx, ownerID, publicID)
	if err != nil {
		return nil, err
	}

	description := mockDescription
	if s.model.Configured() {
		prompt := "Write a short, punchy sales description for a second-hand item called \"" + item.Name + "\" listed on a retro-futuristic peer-to-peer trading site. Two sentences, cyberpunk flavor, no markdown."
		generated, genErr := s.model.GenerateText(ctx, "", prompt)
		if genErr != nil {
			s.log.Warn().Err(genErr).Str("item_id", item.PublicID).Msg("description generation failed")
			description = failedDescription
		} else {
			description = strings.TrimSpace(generated)
		}
	}

	item.Description = description
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// identification is the strict JSON shape requested from the model.
type identification struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IdentifyFromImage names and describes an item from a photo and creates
// it with the photo attached. Falls back to mock metadata when the model
// is unconfigured or returns garbage.
func (s *Service) IdentifyFromImage(ctx context.Context, ownerID, photoDataURI string) (*Item, error) {
	if strings.TrimSpace(photoDataURI) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "photo data is required", nil, "")
	}

	ident := identification{Name: mockItemName, Description: mockDescription}
	if s.model.Configured() {
		prompt := `Identify the object in this photo for a second-hand trading listing. Respond with strict JSON only, no prose: {"name": "<short item name>", "description": "<one to two sentence sales description>"}`
		raw, err := s.model.GenerateFromImage(ctx, prompt, photoDataURI)
		if err != nil {
			s.log.Warn().Err(err).Msg("image identification failed")
		} else if parseErr := json.Unmarshal([]byte(extractJSON(raw)), &ident); parseErr != nil || ident.Name == "" {
			s.log.Warn().Str("raw", raw).Msg("image identification returned malformed output")
			ident = identification{Name: mockItemName, Description: mockDescription}
		}
	}

	item, err := NewItem(ownerID, ident.Name, ident.Description, []string{photoDataURI})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "create identified item")
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// extractJSON trims code fences and surrounding prose some models wrap
// around JSON output.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
