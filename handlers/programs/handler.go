package programs

import (
	"net/http"
	"strings"

	"sportadmin-backend/db"
	"sportadmin-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Get all programs
// @Description Retrieve all programs, optionally filtered by activity, area and name
// @Tags programs
// @Produce json
// @Param is_active query string false "Filter by active state (true/false)"
// @Param area_id query string false "Filter by area"
// @Param search query string false "Case-insensitive name search"
// @Success 200 {array} models.Program
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /programs [get]
func GetAllPrograms(c *gin.Context) {
	query := db.DB.Order("name ASC")

	if isActive := c.Query("is_active"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}
	if areaID := c.Query("area_id"); areaID != "" {
		query = query.Where("area_id = ?", areaID)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var programs []models.Program
	result := query.Find(&programs)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, programs)
}

// @Summary Get a program
// @Description Retrieve a program by its ID
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} models.Program
// @Failure 404 {object} map[string]string "error: Program not found"
// @Router /programs/{id} [get]
func GetProgramByID(c *gin.Context) {
	programID := c.Param("id")

	var program models.Program
	result := db.DB.First(&program, "id = ?", programID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		return
	}

	c.JSON(http.StatusOK, program)
}

// @Summary Create a new program
// @Description Create a new program attached to an area
// @Tags programs
// @Accept json
// @Produce json
// @Param program body models.ProgramCreate true "Program information"
// @Success 201 {object} models.Program
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Area not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /programs [post]
func CreateProgram(c *gin.Context) {
	var programCreate models.ProgramCreate
	if err := c.ShouldBindJSON(&programCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var area models.Area
	if err := db.DB.First(&area, "id = ?", programCreate.AreaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Area not found"})
		return
	}

	program := models.Program{
		Name:        programCreate.Name,
		Description: programCreate.Description,
		AreaID:      programCreate.AreaID,
		SchoolID:    programCreate.SchoolID,
		Price:       programCreate.Price,
		Capacity:    programCreate.Capacity,
		IsActive:    true,
	}
	if programCreate.IsActive != nil {
		program.IsActive = *programCreate.IsActive
	}

	result := db.DB.Create(&program)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating program: " + result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, program)
}

// @Summary Update a program
// @Description Update a program with the provided information
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param program body models.ProgramCreate true "Updated program information"
// @Success 200 {object} models.Program
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Program not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /programs/{id} [put]
func UpdateProgram(c *gin.Context) {
	programID := c.Param("id")

	var program models.Program
	result := db.DB.First(&program, "id = ?", programID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		return
	}

	var programUpdate models.ProgramCreate
	if err := c.ShouldBindJSON(&programUpdate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	program.Name = programUpdate.Name
	program.Description = programUpdate.Description
	program.AreaID = programUpdate.AreaID
	program.SchoolID = programUpdate.SchoolID
	program.Price = programUpdate.Price
	program.Capacity = programUpdate.Capacity
	if programUpdate.IsActive != nil {
		program.IsActive = *programUpdate.IsActive
	}

	result = db.DB.Save(&program)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating program: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, program)
}

// @Summary Delete a program
// @Description Delete a program by its ID
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} map[string]string "message: Program deleted successfully"
// @Failure 404 {object} map[string]string "error: Program not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /programs/{id} [delete]
func DeleteProgram(c *gin.Context) {
	programID := c.Param("id")

	var program models.Program
	result := db.DB.First(&program, "id = ?", programID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		return
	}

	// Les plans existants gardent leur copie dénormalisée, on détache juste la référence
	if err := db.DB.Exec("UPDATE payment_plans SET program_id = NULL WHERE program_id = ?", programID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error detaching payment plans: " + err.Error()})
		return
	}

	result = db.DB.Delete(&program)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting program: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Program deleted successfully"})
}
