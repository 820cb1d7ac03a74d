package constant

const (
	MessageTypeTask       = "task"
	MessageTypeStatus     = "status"
	MessageTypeFinding    = "finding"
	MessageTypeCompletion = "completion"

	ConversationStatusActive    = "active"
	ConversationStatusCompleted = "completed"
	ConversationStatusFailed    = "failed"

	// Watermill topic carrying recorded findings to the memory consumer.
	FindingRecordedTopic = "RESEARCH_FINDING_RECORDED"
)
