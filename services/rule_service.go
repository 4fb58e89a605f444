package services

import (
	"errors"
	"strings"

	"boardinghouse-backend/models"
	"boardinghouse-backend/repositories"

	"gorm.io/gorm"
)

// RuleService handles house-rule CRUD. Every operation verifies property
// ownership first and reports a miss as not-found.
type RuleService struct {
	properties repositories.PropertyRepository
	rules      repositories.RuleRepository
}

func NewRuleService(properties repositories.PropertyRepository, rules repositories.RuleRepository) *RuleService {
	return &RuleService{properties: properties, rules: rules}
}

func (s *RuleService) checkOwnership(propertyID, userID uint) error {
	if _, err := s.properties.FindOwned(propertyID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	return nil
}

func (s *RuleService) List(propertyID, userID uint) ([]models.PropertyRule, error) {
	if err := s.checkOwnership(propertyID, userID); err != nil {
		return nil, err
	}
	rules, err := s.rules.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = []models.PropertyRule{}
	}
	return rules, nil
}

func (s *RuleService) Add(propertyID, userID uint, ruleName string) (*models.PropertyRule, error) {
	if strings.TrimSpace(ruleName) == "" {
		return nil, ErrRuleNameRequired
	}
	if err := s.checkOwnership(propertyID, userID); err != nil {
		return nil, err
	}

	rule := models.PropertyRule{PropertyID: propertyID, RuleName: ruleName}
	if err := s.rules.Add(&rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// AddBulk inserts all rules or none of them.
func (s *RuleService) AddBulk(propertyID, userID uint, ruleNames []string) ([]models.PropertyRule, error) {
	if len(ruleNames) == 0 {
		return nil, ErrRulesRequired
	}
	for _, name := range ruleNames {
		if strings.TrimSpace(name) == "" {
			return nil, ErrRuleNameRequired
		}
	}
	if err := s.checkOwnership(propertyID, userID); err != nil {
		return nil, err
	}

	return s.rules.AddBulk(propertyID, ruleNames)
}

func (s *RuleService) Update(propertyID, userID, ruleID uint, ruleName string) (*models.PropertyRule, error) {
	if strings.TrimSpace(ruleName) == "" {
		return nil, ErrRuleNameRequired
	}
	if err := s.checkOwnership(propertyID, userID); err != nil {
		return nil, err
	}

	affected, err := s.rules.Update(propertyID, ruleID, ruleName)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRuleNotFound
	}
	return &models.PropertyRule{ID: ruleID, PropertyID: propertyID, RuleName: ruleName}, nil
}

func (s *RuleService) Delete(propertyID, userID, ruleID uint) error {
	if err := s.checkOwnership(propertyID, userID); err != nil {
		return err
	}

	affected, err := s.rules.Delete(propertyID, ruleID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// DeleteAll is idempotent: deleting zero rules is still a success.
func (s *RuleService) DeleteAll(propertyID, userID uint) error {
	if err := s.checkOwnership(propertyID, userID); err != nil {
		return err
	}
	return s.rules.DeleteAll(propertyID)
}
