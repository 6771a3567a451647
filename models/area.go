package models

import (
	"time"
)

// Area représente une zone géographique regroupant des écoles
// @Description Zone géographique d'activité
type Area struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" gorm:"type:text"`
	IsActive    bool      `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Area) TableName() string {
	return "areas"
}

// AreaCreate modèle pour créer ou modifier une zone
type AreaCreate struct {
	Name        string `json:"name" binding:"required" example:"North District"`
	Description string `json:"description" example:"Schools north of the river"`
	IsActive    *bool  `json:"isActive"`
}
