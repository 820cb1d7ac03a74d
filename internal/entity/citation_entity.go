package entity

import "time"

// Citation rows carry the session identifier as a string so session ids
// minted by the orchestrator (UUIDs) survive the legacy integer column.
type Citation struct {
	Id           uint `gorm:"primaryKey"`
	SessionId    string
	FindingId    int
	SourceUrl    string
	SourceTitle  string
	CitationText string
	CreatedAt    time.Time
}
