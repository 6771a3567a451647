package main

import (
	"log"
	"os"

	"sportadmin-backend/db"
	_ "sportadmin-backend/docs"
	"sportadmin-backend/routes"
	"sportadmin-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title API Sport Admin Backend
// @version 1.0
// @description API d'administration des programmes sportifs: zones, écoles, programmes, plans de paiement
// @host localhost:8080
// @BasePath /api/v1
func main() {

	gin.SetMode(gin.ReleaseMode)

	// Initialiser la base de données
	db.InitDB()

	// Cache du tableau de bord (optionnel)
	db.InitRedis()

	// Initialiser Cloudinary
	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Avertissement: Initialisation de Cloudinary a échoué: %v", err)
		log.Println("Le téléchargement des logos ne fonctionnera pas correctement.")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
