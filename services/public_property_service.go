package services

import (
	"errors"

	"boardinghouse-backend/models"
	"boardinghouse-backend/repositories"

	"gorm.io/gorm"
)

// PublicPropertyService is the unauthenticated read-only view over
// available properties.
type PublicPropertyService struct {
	public repositories.PublicRepository
}

func NewPublicPropertyService(public repositories.PublicRepository) *PublicPropertyService {
	return &PublicPropertyService{public: public}
}

func (s *PublicPropertyService) composeAll(properties []models.Property) ([]PropertyView, error) {
	ids := make([]uint, 0, len(properties))
	for i := range properties {
		ids = append(ids, properties[i].ID)
	}

	rulesByProperty, err := s.public.RulesByProperty(ids)
	if err != nil {
		return nil, err
	}

	views := make([]PropertyView, 0, len(properties))
	for i := range properties {
		rules := rulesByProperty[properties[i].ID]
		if rules == nil {
			rules = []models.PropertyRule{}
		}
		views = append(views, PropertyView{
			Property: properties[i],
			Images:   DecodeImageManifest(properties[i].Images),
			Rules:    rules,
		})
	}
	return views, nil
}

// Search returns available properties matching the filters, most recently
// created first.
func (s *PublicPropertyService) Search(filters repositories.SearchFilters) ([]PropertyView, error) {
	properties, err := s.public.Search(filters)
	if err != nil {
		return nil, err
	}
	return s.composeAll(properties)
}

func (s *PublicPropertyService) GetByID(propertyID uint) (*PropertyView, error) {
	property, err := s.public.FindAvailable(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	views, err := s.composeAll([]models.Property{*property})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *PublicPropertyService) ListCities() ([]string, error) {
	cities, err := s.public.ListCities()
	if err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []string{}
	}
	return cities, nil
}
