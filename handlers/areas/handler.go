package areas

import (
	"net/http"
	"strings"

	"sportadmin-backend/db"
	"sportadmin-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Get all areas
// @Description Retrieve all areas, optionally filtered by activity and name
// @Tags areas
// @Produce json
// @Param is_active query string false "Filter by active state (true/false)"
// @Param search query string false "Case-insensitive name search"
// @Success 200 {array} models.Area
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /areas [get]
func GetAllAreas(c *gin.Context) {
	query := db.DB.Order("name ASC")

	if isActive := c.Query("is_active"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var areas []models.Area
	result := query.Find(&areas)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, areas)
}

// @Summary Get an area
// @Description Retrieve an area by its ID
// @Tags areas
// @Produce json
// @Param id path string true "Area ID"
// @Success 200 {object} models.Area
// @Failure 404 {object} map[string]string "error: Area not found"
// @Router /areas/{id} [get]
func GetAreaByID(c *gin.Context) {
	areaID := c.Param("id")

	var area models.Area
	result := db.DB.First(&area, "id = ?", areaID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Area not found"})
		return
	}

	c.JSON(http.StatusOK, area)
}

// @Summary Create a new area
// @Description Create a new area with the provided information
// @Tags areas
// @Accept json
// @Produce json
// @Param area body models.AreaCreate true "Area information"
// @Success 201 {object} models.Area
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /areas [post]
func CreateArea(c *gin.Context) {
	var areaCreate models.AreaCreate
	if err := c.ShouldBindJSON(&areaCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var existingArea models.Area
	resultInAreas := db.DB.First(&existingArea, "name = ?", areaCreate.Name)
	if resultInAreas.Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Area already exists",
		})
		return
	}

	area := models.Area{
		Name:        areaCreate.Name,
		Description: areaCreate.Description,
		IsActive:    true,
	}
	if areaCreate.IsActive != nil {
		area.IsActive = *areaCreate.IsActive
	}

	result := db.DB.Create(&area)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating area: " + result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, area)
}

// @Summary Update an area
// @Description Update an area with the provided information
// @Tags areas
// @Accept json
// @Produce json
// @Param id path string true "Area ID"
// @Param area body models.AreaCreate true "Updated area information"
// @Success 200 {object} models.Area
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Area not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /areas/{id} [put]
func UpdateArea(c *gin.Context) {
	areaID := c.Param("id")

	var area models.Area
	result := db.DB.First(&area, "id = ?", areaID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Area not found"})
		return
	}

	var areaUpdate models.AreaCreate
	if err := c.ShouldBindJSON(&areaUpdate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	area.Name = areaUpdate.Name
	area.Description = areaUpdate.Description
	if areaUpdate.IsActive != nil {
		area.IsActive = *areaUpdate.IsActive
	}

	result = db.DB.Save(&area)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating area: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, area)
}

// @Summary Delete an area
// @Description Delete an area by its ID
// @Tags areas
// @Produce json
// @Param id path string true "Area ID"
// @Success 200 {object} map[string]string "message: Area deleted successfully"
// @Failure 404 {object} map[string]string "error: Area not found"
// @Failure 409 {object} map[string]string "error: Area still has schools"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /areas/{id} [delete]
func DeleteArea(c *gin.Context) {
	areaID := c.Param("id")

	// On vérifie que la zone existe avant de la supprimer
	var area models.Area
	result := db.DB.First(&area, "id = ?", areaID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Area not found"})
		return
	}

	var schoolCount int64
	if err := db.DB.Model(&models.School{}).Where("area_id = ?", areaID).Count(&schoolCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking area usage: " + err.Error()})
		return
	}
	if schoolCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Area still has schools attached"})
		return
	}

	result = db.DB.Delete(&area)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting area: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Area deleted successfully"})
}
