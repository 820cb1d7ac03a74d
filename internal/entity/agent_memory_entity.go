package entity

import "time"

type AgentMemory struct {
	Id           uint `gorm:"primaryKey"`
	AgentId      uint `gorm:"index"`
	MemoryType   string
	Content      string
	Importance   float64
	CreatedAt    time.Time
	LastAccessed time.Time
}

func (AgentMemory) TableName() string {
	return "agent_memory"
}
