package services

import (
	"errors"
	"sort"
	"time"

	"boardinghouse-backend/models"
	"boardinghouse-backend/repositories"

	"gorm.io/gorm"
)

// In-memory repository doubles. They mirror the transactional contracts
// of the real repositories: a forced failure mid-insert leaves nothing
// behind.

type mockRuleRepo struct {
	byProperty map[uint][]models.PropertyRule
	nextID     uint

	// failBulkAt forces the Nth insert of AddBulk to fail (1-based).
	failBulkAt int
}

func newMockRuleRepo() *mockRuleRepo {
	return &mockRuleRepo{byProperty: make(map[uint][]models.PropertyRule)}
}

func (m *mockRuleRepo) insert(propertyID uint, name string) models.PropertyRule {
	m.nextID++
	rule := models.PropertyRule{ID: m.nextID, PropertyID: propertyID, RuleName: name}
	m.byProperty[propertyID] = append(m.byProperty[propertyID], rule)
	return rule
}

func (m *mockRuleRepo) removeAll(propertyID uint) {
	delete(m.byProperty, propertyID)
}

func (m *mockRuleRepo) ListByProperty(propertyID uint) ([]models.PropertyRule, error) {
	rules := m.byProperty[propertyID]
	out := make([]models.PropertyRule, len(rules))
	copy(out, rules)
	return out, nil
}

func (m *mockRuleRepo) Add(rule *models.PropertyRule) error {
	m.nextID++
	rule.ID = m.nextID
	m.byProperty[rule.PropertyID] = append(m.byProperty[rule.PropertyID], *rule)
	return nil
}

func (m *mockRuleRepo) AddBulk(propertyID uint, ruleNames []string) ([]models.PropertyRule, error) {
	created := make([]models.PropertyRule, 0, len(ruleNames))
	for i, name := range ruleNames {
		if m.failBulkAt == i+1 {
			for _, rule := range created {
				m.remove(propertyID, rule.ID)
			}
			return nil, errors.New("forced rule insert failure")
		}
		created = append(created, m.insert(propertyID, name))
	}
	return created, nil
}

func (m *mockRuleRepo) remove(propertyID, ruleID uint) int64 {
	rules := m.byProperty[propertyID]
	for i, rule := range rules {
		if rule.ID == ruleID {
			m.byProperty[propertyID] = append(rules[:i], rules[i+1:]...)
			return 1
		}
	}
	return 0
}

func (m *mockRuleRepo) Update(propertyID, ruleID uint, ruleName string) (int64, error) {
	rules := m.byProperty[propertyID]
	for i := range rules {
		if rules[i].ID == ruleID {
			rules[i].RuleName = ruleName
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockRuleRepo) Delete(propertyID, ruleID uint) (int64, error) {
	return m.remove(propertyID, ruleID), nil
}

func (m *mockRuleRepo) DeleteAll(propertyID uint) error {
	m.removeAll(propertyID)
	return nil
}

type mockPropertyRepo struct {
	properties map[uint]*models.Property
	rules      *mockRuleRepo
	nextID     uint

	// failRuleAt forces the Nth inline rule insert of CreateWithRules
	// to fail (1-based).
	failRuleAt int
}

func newMockPropertyRepo(rules *mockRuleRepo) *mockPropertyRepo {
	return &mockPropertyRepo{properties: make(map[uint]*models.Property), rules: rules}
}

func (m *mockPropertyRepo) seed(p models.Property) *models.Property {
	if p.ID == 0 {
		m.nextID++
		p.ID = m.nextID
	} else if p.ID > m.nextID {
		m.nextID = p.ID
	}
	cp := p
	m.properties[cp.ID] = &cp
	return &cp
}

func (m *mockPropertyRepo) FindOwned(propertyID, userID uint) (*models.Property, error) {
	p, ok := m.properties[propertyID]
	if !ok || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPropertyRepo) ListByOwner(userID uint) ([]models.Property, error) {
	var out []models.Property
	for _, p := range m.properties {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockPropertyRepo) CreateWithRules(property *models.Property, ruleNames []string) ([]models.PropertyRule, error) {
	m.nextID++
	property.ID = m.nextID
	property.CreatedAt = time.Now()
	property.UpdatedAt = property.CreatedAt
	cp := *property
	m.properties[cp.ID] = &cp

	created := make([]models.PropertyRule, 0, len(ruleNames))
	for i, name := range ruleNames {
		if m.failRuleAt == i+1 {
			delete(m.properties, cp.ID)
			m.rules.removeAll(cp.ID)
			return nil, errors.New("forced rule insert failure")
		}
		created = append(created, m.rules.insert(cp.ID, name))
	}
	return created, nil
}

func (m *mockPropertyRepo) Update(propertyID, userID uint, updates map[string]interface{}) error {
	p, ok := m.properties[propertyID]
	if !ok || p.UserID != userID {
		return nil
	}
	for key, value := range updates {
		switch key {
		case "address":
			p.Address = value.(string)
		case "city":
			p.City = value.(string)
		case "state":
			p.State = value.(string)
		case "zip_code":
			p.ZipCode = value.(string)
		case "price":
			p.Price = value.(float64)
		case "bedrooms":
			p.Bedrooms = value.(int)
		case "bathrooms":
			p.Bathrooms = value.(int)
		case "max_persons":
			p.MaxPersons = value.(int)
		case "images":
			p.Images = value.(*string)
		case "status":
			p.Status = value.(string)
		}
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (m *mockPropertyRepo) UpdateImages(propertyID uint, manifest *string) error {
	if p, ok := m.properties[propertyID]; ok {
		p.Images = manifest
	}
	return nil
}

func (m *mockPropertyRepo) Delete(propertyID, userID uint, cascadeRules bool) error {
	delete(m.properties, propertyID)
	if cascadeRules {
		m.rules.removeAll(propertyID)
	}
	return nil
}

type recordingRemover struct {
	removed []string
}

func (r *recordingRemover) Remove(filename string) {
	r.removed = append(r.removed, filename)
}

type mockPublicRepo struct {
	properties []models.Property
	rules      map[uint][]models.PropertyRule
	cities     []string
}

func (m *mockPublicRepo) Search(_ repositories.SearchFilters) ([]models.Property, error) {
	return m.properties, nil
}

func (m *mockPublicRepo) FindAvailable(propertyID uint) (*models.Property, error) {
	for i := range m.properties {
		if m.properties[i].ID == propertyID && m.properties[i].Status == models.StatusAvailable {
			cp := m.properties[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPublicRepo) ListCities() ([]string, error) {
	return m.cities, nil
}

func (m *mockPublicRepo) RulesByProperty(propertyIDs []uint) (map[uint][]models.PropertyRule, error) {
	grouped := make(map[uint][]models.PropertyRule)
	for _, id := range propertyIDs {
		if rules, ok := m.rules[id]; ok {
			grouped[id] = rules
		}
	}
	return grouped, nil
}

type mockUserRepo struct {
	byEmail map[string]*models.User
	nextID  uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byEmail: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	cp := *user
	m.byEmail[user.Email] = &cp
	return nil
}

func (m *mockUserRepo) FindByEmail(email string) (*models.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserRepo) FindByID(userID uint) (*models.User, error) {
	for _, user := range m.byEmail {
		if user.ID == userID {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
