package entity

import (
	"time"

	"gorm.io/datatypes"
)

// SentimentSnapshot is one persisted pipeline result, written by the digest
// job so sentiment history survives across runs.
type SentimentSnapshot struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Ticker         string         `gorm:"not null;index" json:"ticker"`
	SentimentLabel string         `gorm:"not null" json:"sentiment_label"`
	AverageScore   float64        `gorm:"not null" json:"average_score"`
	Payload        datatypes.JSON `json:"payload"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the SentimentSnapshot model.
func (SentimentSnapshot) TableName() string {
	return "sentiment_snapshots"
}
