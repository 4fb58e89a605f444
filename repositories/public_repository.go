package repositories

import (
	"boardinghouse-backend/models"

	"gorm.io/gorm"
)

// SearchFilters are the optional, independently composable public search
// parameters. Nil pointer fields mean "not filtered".
type SearchFilters struct {
	Search     string
	City       string
	MinPrice   *float64
	MaxPrice   *float64
	Bedrooms   *int
	MaxPersons *int
}

// PublicRepository is the unauthenticated read surface. Every query is
// restricted to available properties.
type PublicRepository interface {
	Search(filters SearchFilters) ([]models.Property, error)
	FindAvailable(propertyID uint) (*models.Property, error)
	ListCities() ([]string, error)
	RulesByProperty(propertyIDs []uint) (map[uint][]models.PropertyRule, error)
}

type publicRepository struct {
	db *gorm.DB
}

func NewPublicRepository(db *gorm.DB) PublicRepository {
	return &publicRepository{db: db}
}

func (r *publicRepository) Search(filters SearchFilters) ([]models.Property, error) {
	query := r.db.Where("status = ?", models.StatusAvailable)

	if filters.Search != "" {
		term := "%" + filters.Search + "%"
		query = query.Where("address LIKE ? OR city LIKE ? OR state LIKE ?", term, term, term)
	}
	if filters.City != "" {
		query = query.Where("city = ?", filters.City)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.Bedrooms != nil {
		query = query.Where("bedrooms >= ?", *filters.Bedrooms)
	}
	if filters.MaxPersons != nil {
		query = query.Where("max_persons >= ?", *filters.MaxPersons)
	}

	var properties []models.Property
	err := query.Order("created_at DESC").Find(&properties).Error
	return properties, err
}

func (r *publicRepository) FindAvailable(propertyID uint) (*models.Property, error) {
	var property models.Property
	err := r.db.Where("id = ? AND status = ?", propertyID, models.StatusAvailable).First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *publicRepository) ListCities() ([]string, error) {
	var cities []string
	err := r.db.Model(&models.Property{}).
		Where("status = ?", models.StatusAvailable).
		Distinct("city").
		Order("city").
		Pluck("city", &cities).Error
	return cities, err
}

// RulesByProperty loads the rules for a set of properties in one query
// and groups them in memory. Grouping here instead of string aggregation
// in SQL means a property with no rules simply has no map entry.
func (r *publicRepository) RulesByProperty(propertyIDs []uint) (map[uint][]models.PropertyRule, error) {
	grouped := make(map[uint][]models.PropertyRule, len(propertyIDs))
	if len(propertyIDs) == 0 {
		return grouped, nil
	}

	var rules []models.PropertyRule
	if err := r.db.Where("property_id IN ?", propertyIDs).Order("id").Find(&rules).Error; err != nil {
		return nil, err
	}
	for _, rule := range rules {
		grouped[rule.PropertyID] = append(grouped[rule.PropertyID], rule)
	}
	return grouped, nil
}
