package services

import (
	"errors"
	"fmt"

	"boardinghouse-backend/models"
	"boardinghouse-backend/repositories"

	"gorm.io/gorm"
)

// PropertyView is a property composed for responses: the decoded image
// list and the full rule list replace the raw stored manifest.
type PropertyView struct {
	models.Property
	Images []string              `json:"images"`
	Rules  []models.PropertyRule `json:"rules"`
}

// PropertyInput carries the scalar fields of a create or update request.
// Defaulting policy lives at the HTTP boundary: create fills absent
// numeric fields with 1, update writes exactly what was sent.
type PropertyInput struct {
	Address    string
	City       string
	State      string
	ZipCode    string
	Price      float64
	Bedrooms   int
	Bathrooms  int
	MaxPersons int
	Status     string
}

// ImageRemover deletes a stored image file best-effort.
type ImageRemover interface {
	Remove(filename string)
}

// PropertyService handles every owner-scoped property operation.
type PropertyService struct {
	properties repositories.PropertyRepository
	rules      repositories.RuleRepository
	images     ImageRemover

	// cascadeRulesOnDelete decides whether rule rows die with their
	// property. Off by default; see config.Config.
	cascadeRulesOnDelete bool
}

func NewPropertyService(
	properties repositories.PropertyRepository,
	rules repositories.RuleRepository,
	images ImageRemover,
	cascadeRulesOnDelete bool,
) *PropertyService {
	return &PropertyService{
		properties:           properties,
		rules:                rules,
		images:               images,
		cascadeRulesOnDelete: cascadeRulesOnDelete,
	}
}

func (s *PropertyService) compose(property *models.Property) (*PropertyView, error) {
	rules, err := s.rules.ListByProperty(property.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch rules: %w", err)
	}
	if rules == nil {
		rules = []models.PropertyRule{}
	}
	return &PropertyView{
		Property: *property,
		Images:   DecodeImageManifest(property.Images),
		Rules:    rules,
	}, nil
}

// ListMine returns the caller's properties, most recently created first,
// each with decoded images and rules attached.
func (s *PropertyService) ListMine(userID uint) ([]PropertyView, error) {
	properties, err := s.properties.ListByOwner(userID)
	if err != nil {
		return nil, err
	}

	views := make([]PropertyView, 0, len(properties))
	for i := range properties {
		view, err := s.compose(&properties[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *PropertyService) GetMine(propertyID, userID uint) (*PropertyView, error) {
	property, err := s.properties.FindOwned(propertyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return s.compose(property)
}

// Create inserts the property and any inline rules atomically. A failed
// rule insert aborts the whole creation.
func (s *PropertyService) Create(userID uint, input PropertyInput, filenames []string, ruleNames []string) (*PropertyView, error) {
	property := &models.Property{
		UserID:     userID,
		Address:    input.Address,
		City:       input.City,
		State:      input.State,
		ZipCode:    input.ZipCode,
		Price:      input.Price,
		Bedrooms:   input.Bedrooms,
		Bathrooms:  input.Bathrooms,
		MaxPersons: input.MaxPersons,
		Images:     EncodeImageManifest(filenames),
		Status:     input.Status,
	}

	rules, err := s.properties.CreateWithRules(property, ruleNames)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	return &PropertyView{
		Property: *property,
		Images:   DecodeImageManifest(property.Images),
		Rules:    rules,
	}, nil
}

// Update overwrites the scalar fields and appends newly uploaded images
// to the manifest. Images are additive here; removal goes through
// DeleteImage only.
func (s *PropertyService) Update(propertyID, userID uint, input PropertyInput, newFilenames []string) (*PropertyView, error) {
	existing, err := s.properties.FindOwned(propertyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	images := append(DecodeImageManifest(existing.Images), newFilenames...)

	updates := map[string]interface{}{
		"address":     input.Address,
		"city":        input.City,
		"state":       input.State,
		"zip_code":    input.ZipCode,
		"price":       input.Price,
		"bedrooms":    input.Bedrooms,
		"bathrooms":   input.Bathrooms,
		"max_persons": input.MaxPersons,
		"images":      EncodeImageManifest(images),
		"status":      input.Status,
	}
	if err := s.properties.Update(propertyID, userID, updates); err != nil {
		return nil, err
	}

	return s.GetMine(propertyID, userID)
}

// Delete removes the property row and its stored image files. File
// removal is best-effort; the row delete is unconditional once ownership
// is confirmed. Rule rows are removed only when cascade is enabled.
func (s *PropertyService) Delete(propertyID, userID uint) error {
	property, err := s.properties.FindOwned(propertyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}

	for _, image := range DecodeImageManifest(property.Images) {
		s.images.Remove(image)
	}

	return s.properties.Delete(propertyID, userID, s.cascadeRulesOnDelete)
}

// DeleteImage drops one filename from the manifest. A name that was
// never present is a no-op, not an error.
func (s *PropertyService) DeleteImage(propertyID, userID uint, imageName string) error {
	property, err := s.properties.FindOwned(propertyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}

	images := DecodeImageManifest(property.Images)
	remaining := make([]string, 0, len(images))
	for _, image := range images {
		if image != imageName {
			remaining = append(remaining, image)
		}
	}

	s.images.Remove(imageName)

	return s.properties.UpdateImages(propertyID, EncodeImageManifest(remaining))
}
