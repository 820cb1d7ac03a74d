package entity

import "time"

type Message struct {
	Id             uint `gorm:"primaryKey"`
	ConversationId uint `gorm:"index"`
	SpeakerId      uint
	Message        string
	Timestamp      time.Time
	MessageType    string
}
