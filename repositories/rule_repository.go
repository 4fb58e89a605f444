package repositories

import (
	"boardinghouse-backend/models"

	"gorm.io/gorm"
)

// RuleRepository persists house rules. Ownership of the parent property
// is checked by the service layer before any of these are called.
type RuleRepository interface {
	ListByProperty(propertyID uint) ([]models.PropertyRule, error)
	Add(rule *models.PropertyRule) error
	AddBulk(propertyID uint, ruleNames []string) ([]models.PropertyRule, error)
	Update(propertyID, ruleID uint, ruleName string) (int64, error)
	Delete(propertyID, ruleID uint) (int64, error)
	DeleteAll(propertyID uint) error
}

type ruleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{db: db}
}

func (r *ruleRepository) ListByProperty(propertyID uint) ([]models.PropertyRule, error) {
	var rules []models.PropertyRule
	err := r.db.Where("property_id = ?", propertyID).Order("id").Find(&rules).Error
	return rules, err
}

func (r *ruleRepository) Add(rule *models.PropertyRule) error {
	return r.db.Create(rule).Error
}

// AddBulk inserts every rule inside one transaction and returns the
// created rows in input order; a failed insert rolls back all of them.
func (r *ruleRepository) AddBulk(propertyID uint, ruleNames []string) ([]models.PropertyRule, error) {
	rules := make([]models.PropertyRule, 0, len(ruleNames))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range ruleNames {
			rule := models.PropertyRule{PropertyID: propertyID, RuleName: name}
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

func (r *ruleRepository) Update(propertyID, ruleID uint, ruleName string) (int64, error) {
	result := r.db.Model(&models.PropertyRule{}).
		Where("id = ? AND property_id = ?", ruleID, propertyID).
		Update("rule_name", ruleName)
	return result.RowsAffected, result.Error
}

func (r *ruleRepository) Delete(propertyID, ruleID uint) (int64, error) {
	result := r.db.Where("id = ? AND property_id = ?", ruleID, propertyID).Delete(&models.PropertyRule{})
	return result.RowsAffected, result.Error
}

func (r *ruleRepository) DeleteAll(propertyID uint) error {
	return r.db.Where("property_id = ?", propertyID).Delete(&models.PropertyRule{}).Error
}
