package controllers

import (
	"net/http"
	"strconv"

	"boardinghouse-backend/repositories"
	"boardinghouse-backend/services"
	"boardinghouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type PublicPropertyController struct {
	service *services.PublicPropertyService
}

func NewPublicPropertyController(service *services.PublicPropertyService) *PublicPropertyController {
	return &PublicPropertyController{service: service}
}

func queryFloat(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func queryInt(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// GET /api/public/properties/search
func (ctl *PublicPropertyController) SearchProperties(c *gin.Context) {
	filters := repositories.SearchFilters{
		Search:     c.Query("search"),
		City:       c.Query("city"),
		MinPrice:   queryFloat(c, "minPrice"),
		MaxPrice:   queryFloat(c, "maxPrice"),
		Bedrooms:   queryInt(c, "bedrooms"),
		MaxPersons: queryInt(c, "maxPersons"),
	}

	views, err := ctl.service.Search(filters)
	if err != nil {
		respondError(c, err, "Error searching properties")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// GET /api/public/properties/:id
func (ctl *PublicPropertyController) GetPropertyByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}

	view, err := ctl.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Error fetching property")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// GET /api/public/properties/cities
func (ctl *PublicPropertyController) GetCities(c *gin.Context) {
	cities, err := ctl.service.ListCities()
	if err != nil {
		respondError(c, err, "Error fetching cities")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cities)
}
