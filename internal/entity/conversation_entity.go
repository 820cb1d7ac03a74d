package entity

import "time"

// Conversation records one research session. Agent1Id and Agent2Id keep
// the historical pairing shape; research sessions always pin them to the
// first two agents.
type Conversation struct {
	Id        uint `gorm:"primaryKey"`
	Topic     string
	Agent1Id  uint `gorm:"column:agent1_id"`
	Agent2Id  uint `gorm:"column:agent2_id"`
	StartTime time.Time
	EndTime   *time.Time
	Status    string
}
