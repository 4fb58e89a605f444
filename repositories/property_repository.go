package repositories

import (
	"boardinghouse-backend/models"

	"gorm.io/gorm"
)

// PropertyRepository is the owner-scoped persistence surface for
// properties. Lookups are always keyed by (id, user_id) so a miss is
// indistinguishable from another user's property.
type PropertyRepository interface {
	FindOwned(propertyID, userID uint) (*models.Property, error)
	ListByOwner(userID uint) ([]models.Property, error)
	CreateWithRules(property *models.Property, ruleNames []string) ([]models.PropertyRule, error)
	Update(propertyID, userID uint, updates map[string]interface{}) error
	UpdateImages(propertyID uint, manifest *string) error
	Delete(propertyID, userID uint, cascadeRules bool) error
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) FindOwned(propertyID, userID uint) (*models.Property, error) {
	var property models.Property
	err := r.db.Where("id = ? AND user_id = ?", propertyID, userID).First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) ListByOwner(userID uint) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&properties).Error
	return properties, err
}

// CreateWithRules inserts the property row and its inline rules in one
// transaction; any failure rolls back everything.
func (r *propertyRepository) CreateWithRules(property *models.Property, ruleNames []string) ([]models.PropertyRule, error) {
	rules := make([]models.PropertyRule, 0, len(ruleNames))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(property).Error; err != nil {
			return err
		}
		for _, name := range ruleNames {
			rule := models.PropertyRule{PropertyID: property.ID, RuleName: name}
			if err := tx.Create(&rule).Error; err != nil {
				return err
			}
			rules = append(rules, rule)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *propertyRepository) Update(propertyID, userID uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Property{}).
		Where("id = ? AND user_id = ?", propertyID, userID).
		Updates(updates).Error
}

func (r *propertyRepository) UpdateImages(propertyID uint, manifest *string) error {
	return r.db.Model(&models.Property{}).
		Where("id = ?", propertyID).
		Update("images", manifest).Error
}

func (r *propertyRepository) Delete(propertyID, userID uint, cascadeRules bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if cascadeRules {
			if err := tx.Where("property_id = ?", propertyID).Delete(&models.PropertyRule{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ? AND user_id = ?", propertyID, userID).Delete(&models.Property{}).Error
	})
}
