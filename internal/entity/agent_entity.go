package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Agent struct {
	Id              uint `gorm:"primaryKey"`
	Name            string
	PersonalityType string
	Color           string
	Topics          datatypes.JSON
	Style           string
	CreatedAt       time.Time
}
