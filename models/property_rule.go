package models

// PropertyRule is a single free-text house rule belonging to one property.
// There is no database-level cascade from properties; rule cleanup on
// property deletion is an application-layer decision.
type PropertyRule struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"column:property_id;index;not null" json:"-"`
	RuleName   string `gorm:"column:rule_name;type:varchar(255)" json:"rule_name"`
}
