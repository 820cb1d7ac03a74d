package entity

import "time"

type NetworkConnection struct {
	Id               uint `gorm:"primaryKey"`
	Agent1Id         uint `gorm:"column:agent1_id;index"`
	Agent2Id         uint `gorm:"column:agent2_id;index"`
	Strength         float64
	LastInteraction  time.Time
	InteractionCount int
}
