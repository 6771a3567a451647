package ping

import (
	"net/http"

	"sportadmin-backend/db"
	"sportadmin-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// HandlePing gère la logique de l'endpoint ping
// @Summary Ping test
// @Description Endpoint de test qui répond pong
// @Tags test
// @Produce json
// @Success 200 {object} utils.Response
// @Router /ping [get]
func (h *Handler) HandlePing(c *gin.Context) {
	utils.SendSuccess(c, 200, "Ping successful", gin.H{
		"message": "pong",
	})
}

// HandleHealth vérifie que la base de données répond
// @Summary Health check
// @Description Vérifie que la base de données est joignable
// @Tags test
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /health [get]
func (h *Handler) HandleHealth(c *gin.Context) {
	sqlDB, err := db.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		utils.SendError(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Service healthy", nil)
}
