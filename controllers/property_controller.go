package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"boardinghouse-backend/middleware"
	"boardinghouse-backend/models"
	"boardinghouse-backend/services"
	"boardinghouse-backend/utils"

	"github.com/gin-gonic/gin"
)

// Upload limit matches the multipart boundary contract: at most 10
// images per create or update call.
const maxImagesPerUpload = 10

// respondError maps service sentinels to HTTP statuses. Anything
// unexpected is logged and reported generically.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrPropertyNotFound):
		utils.JSONError(c, http.StatusNotFound, "Property not found")
	case errors.Is(err, services.ErrRuleNotFound):
		utils.JSONError(c, http.StatusNotFound, "Rule not found")
	case errors.Is(err, services.ErrRuleNameRequired):
		utils.JSONError(c, http.StatusBadRequest, "Rule name is required")
	case errors.Is(err, services.ErrRulesRequired):
		utils.JSONError(c, http.StatusBadRequest, "Rules array is required")
	default:
		log.Printf("❌ %s: %v", message, err)
		utils.JSONError(c, http.StatusInternalServerError, message)
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func formInt(c *gin.Context, key string, def int) int {
	raw := strings.TrimSpace(c.PostForm(key))
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

type PropertyController struct {
	service *services.PropertyService
	images  *services.ImageStore
}

func NewPropertyController(service *services.PropertyService, images *services.ImageStore) *PropertyController {
	return &PropertyController{service: service, images: images}
}

// storeUploads saves the attached images and returns their stored
// filenames. It writes the error response itself when something is off.
func (ctl *PropertyController) storeUploads(c *gin.Context) ([]string, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all; treat as no uploads.
		return nil, true
	}

	files := form.File["images"]
	if len(files) > maxImagesPerUpload {
		utils.JSONError(c, http.StatusBadRequest, "A maximum of 10 images can be uploaded")
		return nil, false
	}

	filenames, err := ctl.images.SaveAll(files)
	if err != nil {
		log.Printf("❌ Error storing uploaded images: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error storing uploaded images")
		return nil, false
	}
	return filenames, true
}

// GET /api/properties
func (ctl *PropertyController) GetUserProperties(c *gin.Context) {
	views, err := ctl.service.ListMine(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err, "Error fetching properties")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// GET /api/properties/:id
func (ctl *PropertyController) GetPropertyByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}

	view, err := ctl.service.GetMine(id, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err, "Error fetching property")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// POST /api/properties (multipart)
func (ctl *PropertyController) CreateProperty(c *gin.Context) {
	price, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("price")), 64)
	if err != nil || price < 0 {
		utils.JSONError(c, http.StatusBadRequest, "Valid price is required")
		return
	}

	status := strings.TrimSpace(c.PostForm("status"))
	if status == "" {
		status = models.StatusAvailable
	}

	// Numeric fields default to 1 on creation only; the update path
	// deliberately applies no defaults.
	input := services.PropertyInput{
		Address:    c.PostForm("address"),
		City:       c.PostForm("city"),
		State:      c.PostForm("state"),
		ZipCode:    c.PostForm("zip_code"),
		Price:      price,
		Bedrooms:   formInt(c, "bedrooms", 1),
		Bathrooms:  formInt(c, "bathrooms", 1),
		MaxPersons: formInt(c, "max_persons", 1),
		Status:     status,
	}

	filenames, ok := ctl.storeUploads(c)
	if !ok {
		return
	}

	view, err := ctl.service.Create(middleware.CurrentUserID(c), input, filenames, c.PostFormArray("rules"))
	if err != nil {
		respondError(c, err, "Error creating property")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Property created successfully",
		"data":    view,
	})
}

// PUT /api/properties/:id (multipart; images are additive)
func (ctl *PropertyController) UpdateProperty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("price")), 64)
	if err != nil || price < 0 {
		utils.JSONError(c, http.StatusBadRequest, "Valid price is required")
		return
	}

	input := services.PropertyInput{
		Address:    c.PostForm("address"),
		City:       c.PostForm("city"),
		State:      c.PostForm("state"),
		ZipCode:    c.PostForm("zip_code"),
		Price:      price,
		Bedrooms:   formInt(c, "bedrooms", 0),
		Bathrooms:  formInt(c, "bathrooms", 0),
		MaxPersons: formInt(c, "max_persons", 0),
		Status:     c.PostForm("status"),
	}

	filenames, ok := ctl.storeUploads(c)
	if !ok {
		return
	}

	view, err := ctl.service.Update(id, middleware.CurrentUserID(c), input, filenames)
	if err != nil {
		respondError(c, err, "Error updating property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Property updated successfully",
		"data":    view,
	})
}

// DELETE /api/properties/:id
func (ctl *PropertyController) DeleteProperty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}

	if err := ctl.service.Delete(id, middleware.CurrentUserID(c)); err != nil {
		respondError(c, err, "Error deleting property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Property deleted successfully",
	})
}

// DELETE /api/properties/:id/images/:imageName
func (ctl *PropertyController) DeletePropertyImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}

	if err := ctl.service.DeleteImage(id, middleware.CurrentUserID(c), c.Param("imageName")); err != nil {
		respondError(c, err, "Error deleting image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Image deleted successfully",
	})
}
