package schools

import (
	"net/http"
	"strings"

	"sportadmin-backend/db"
	"sportadmin-backend/models"
	"sportadmin-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get all schools
// @Description Retrieve all schools, optionally filtered by activity, area and name
// @Tags schools
// @Produce json
// @Param is_active query string false "Filter by active state (true/false)"
// @Param area_id query string false "Filter by area"
// @Param search query string false "Case-insensitive search on name and city"
// @Success 200 {array} models.School
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /schools [get]
func GetAllSchools(c *gin.Context) {
	query := db.DB.Order("name ASC")

	if isActive := c.Query("is_active"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}
	if areaID := c.Query("area_id"); areaID != "" {
		query = query.Where("area_id = ?", areaID)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", pattern, pattern)
	}

	var schools []models.School
	result := query.Find(&schools)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, schools)
}

// @Summary Get a school
// @Description Retrieve a school by its ID
// @Tags schools
// @Produce json
// @Param id path string true "School ID"
// @Success 200 {object} models.School
// @Failure 404 {object} map[string]string "error: School not found"
// @Router /schools/{id} [get]
func GetSchoolByID(c *gin.Context) {
	schoolID := c.Param("id")

	var school models.School
	result := db.DB.First(&school, "id = ?", schoolID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	c.JSON(http.StatusOK, school)
}

// @Summary Create a new school
// @Description Create a new school attached to an area
// @Tags schools
// @Accept json
// @Produce json
// @Param school body models.SchoolCreate true "School information"
// @Success 201 {object} models.School
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Area not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /schools [post]
func CreateSchool(c *gin.Context) {
	var schoolCreate models.SchoolCreate
	if err := c.ShouldBindJSON(&schoolCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var area models.Area
	if err := db.DB.First(&area, "id = ?", schoolCreate.AreaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Area not found"})
		return
	}

	school := models.School{
		Name:     schoolCreate.Name,
		Address:  schoolCreate.Address,
		City:     schoolCreate.City,
		AreaID:   schoolCreate.AreaID,
		IsActive: true,
	}
	if schoolCreate.IsActive != nil {
		school.IsActive = *schoolCreate.IsActive
	}

	result := db.DB.Create(&school)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating school: " + result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, school)
}

// @Summary Update a school
// @Description Update a school with the provided information
// @Tags schools
// @Accept json
// @Produce json
// @Param id path string true "School ID"
// @Param school body models.SchoolCreate true "Updated school information"
// @Success 200 {object} models.School
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: School not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /schools/{id} [put]
func UpdateSchool(c *gin.Context) {
	schoolID := c.Param("id")

	var school models.School
	result := db.DB.First(&school, "id = ?", schoolID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	var schoolUpdate models.SchoolCreate
	if err := c.ShouldBindJSON(&schoolUpdate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	school.Name = schoolUpdate.Name
	school.Address = schoolUpdate.Address
	school.City = schoolUpdate.City
	school.AreaID = schoolUpdate.AreaID
	if schoolUpdate.IsActive != nil {
		school.IsActive = *schoolUpdate.IsActive
	}

	result = db.DB.Save(&school)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating school: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, school)
}

// @Summary Delete a school
// @Description Delete a school by its ID
// @Tags schools
// @Produce json
// @Param id path string true "School ID"
// @Success 200 {object} map[string]string "message: School deleted successfully"
// @Failure 404 {object} map[string]string "error: School not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /schools/{id} [delete]
func DeleteSchool(c *gin.Context) {
	schoolID := c.Param("id")

	var school models.School
	result := db.DB.First(&school, "id = ?", schoolID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	// Les programmes rattachés perdent simplement leur référence école
	if err := db.DB.Exec("UPDATE programs SET school_id = NULL WHERE school_id = ?", schoolID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error detaching programs: " + err.Error()})
		return
	}

	result = db.DB.Delete(&school)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting school: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "School deleted successfully"})
}

// @Summary Upload a school logo
// @Description Upload a logo image for a school
// @Tags schools
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "School ID"
// @Param logo formData file true "Logo image"
// @Success 200 {object} models.School
// @Failure 400 {object} map[string]string "error: Invalid file"
// @Failure 404 {object} map[string]string "error: School not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /schools/{id}/logo [post]
func UploadSchoolLogo(c *gin.Context) {
	schoolID := c.Param("id")

	var school models.School
	result := db.DB.First(&school, "id = ?", schoolID)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Logo file is required"})
		return
	}

	logoURL, err := utils.UploadSchoolLogo(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading logo: " + err.Error()})
		return
	}

	school.LogoURL = logoURL
	result = db.DB.Save(&school)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating school: " + result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, school)
}
