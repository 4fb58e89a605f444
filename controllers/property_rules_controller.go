package controllers

import (
	"fmt"
	"net/http"

	"boardinghouse-backend/middleware"
	"boardinghouse-backend/services"
	"boardinghouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type PropertyRuleController struct {
	service *services.RuleService
}

func NewPropertyRuleController(service *services.RuleService) *PropertyRuleController {
	return &PropertyRuleController{service: service}
}

type rulePayload struct {
	RuleName string `json:"rule_name"`
}

type bulkRulesPayload struct {
	Rules []string `json:"rules"`
}

// GET /api/properties/:id/rules
func (ctl *PropertyRuleController) GetRules(c *gin.Context) {
	propertyID, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}

	rules, err := ctl.service.List(propertyID, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err, "Error fetching property rules")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rules)
}

// POST /api/properties/:id/rules
func (ctl *PropertyRuleController) AddRule(c *gin.Context) {
	propertyID, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}

	var payload rulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Rule name is required")
		return
	}

	rule, err := ctl.service.Add(propertyID, middleware.CurrentUserID(c), payload.RuleName)
	if err != nil {
		respondError(c, err, "Error adding property rule")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Rule added successfully",
		"data":    rule,
	})
}

// POST /api/properties/:id/rules/bulk
func (ctl *PropertyRuleController) AddRules(c *gin.Context) {
	propertyID, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}

	var payload bulkRulesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Rules array is required")
		return
	}

	rules, err := ctl.service.AddBulk(propertyID, middleware.CurrentUserID(c), payload.Rules)
	if err != nil {
		respondError(c, err, "Error adding property rules")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d rules added successfully", len(rules)),
		"data":    rules,
	})
}

// PUT /api/properties/:id/rules/:ruleId
func (ctl *PropertyRuleController) UpdateRule(c *gin.Context) {
	propertyID, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}
	ruleID, ok := paramID(c, "ruleId")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Rule not found")
		return
	}

	var payload rulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Rule name is required")
		return
	}

	rule, err := ctl.service.Update(propertyID, middleware.CurrentUserID(c), ruleID, payload.RuleName)
	if err != nil {
		respondError(c, err, "Error updating property rule")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Rule updated successfully",
		"data":    rule,
	})
}

// DELETE /api/properties/:id/rules/:ruleId
func (ctl *PropertyRuleController) DeleteRule(c *gin.Context) {
	propertyID, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}
	ruleID, ok := paramID(c, "ruleId")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Rule not found")
		return
	}

	if err := ctl.service.Delete(propertyID, middleware.CurrentUserID(c), ruleID); err != nil {
		respondError(c, err, "Error deleting property rule")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Rule deleted successfully",
	})
}

// DELETE /api/properties/:id/rules
func (ctl *PropertyRuleController) DeleteAllRules(c *gin.Context) {
	propertyID, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}

	if err := ctl.service.DeleteAll(propertyID, middleware.CurrentUserID(c)); err != nil {
		respondError(c, err, "Error deleting property rules")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All rules deleted successfully",
	})
}
