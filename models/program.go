package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Program représente un programme sportif proposé dans une zone
type Program struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" gorm:"type:text"`
	AreaID      string          `json:"areaId" gorm:"column:area_id;type:uuid;not null" binding:"required"`
	SchoolID    *string         `json:"schoolId,omitempty" gorm:"column:school_id;type:uuid"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2)"`
	Capacity    int             `json:"capacity"`
	IsActive    bool            `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (Program) TableName() string {
	return "programs"
}

// ProgramCreate modèle pour créer ou modifier un programme
type ProgramCreate struct {
	Name        string          `json:"name" binding:"required" example:"U10 Football"`
	Description string          `json:"description"`
	AreaID      string          `json:"areaId" binding:"required"`
	SchoolID    *string         `json:"schoolId"`
	Price       decimal.Decimal `json:"price"`
	Capacity    int             `json:"capacity" example:"20"`
	IsActive    *bool           `json:"isActive"`
}
