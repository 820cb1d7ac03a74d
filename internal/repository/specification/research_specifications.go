package specification

import "gorm.io/gorm"

// ByConversationId filters messages by their parent conversation
type ByConversationId struct {
	ConversationId uint
}

func (s ByConversationId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationId)
}

// ByMessageType filters messages by type (task, status, finding, completion)
type ByMessageType struct {
	MessageType string
}

func (s ByMessageType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("message_type = ?", s.MessageType)
}

// BySessionId filters citations by the session identifier string
type BySessionId struct {
	SessionId string
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}

// BySpeakerId filters messages by the producing agent
type BySpeakerId struct {
	SpeakerId uint
}

func (s BySpeakerId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("speaker_id = ?", s.SpeakerId)
}

// ByConnectionEndpoint filters network connections touching an agent on
// either side
type ByConnectionEndpoint struct {
	AgentId uint
}

func (s ByConnectionEndpoint) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent1_id = ? OR agent2_id = ?", s.AgentId, s.AgentId)
}

// ByAgentPair filters network connections by an unordered agent pair
type ByAgentPair struct {
	Agent1Id uint
	Agent2Id uint
}

func (s ByAgentPair) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"(agent1_id = ? AND agent2_id = ?) OR (agent1_id = ? AND agent2_id = ?)",
		s.Agent1Id, s.Agent2Id, s.Agent2Id, s.Agent1Id,
	)
}
