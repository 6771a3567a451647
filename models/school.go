package models

import (
	"time"
)

// School représente une école partenaire rattachée à une zone
type School struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" binding:"required"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	AreaID    string    `json:"areaId" gorm:"column:area_id;type:uuid;not null" binding:"required"`
	LogoURL   string    `json:"logoUrl" gorm:"column:logo_url"`
	IsActive  bool      `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (School) TableName() string {
	return "schools"
}

// SchoolCreate modèle pour créer ou modifier une école
type SchoolCreate struct {
	Name     string `json:"name" binding:"required" example:"Saint-Exupéry Primary"`
	Address  string `json:"address" example:"12 rue des Lilas"`
	City     string `json:"city" example:"Lyon"`
	AreaID   string `json:"areaId" binding:"required"`
	IsActive *bool  `json:"isActive"`
}
