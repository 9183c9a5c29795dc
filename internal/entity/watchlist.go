package entity

import (
	"time"
)

// DefaultUserID is used while authentication remains an external concern.
const DefaultUserID = "public_user_id"

// Watchlist is one tracked ticker for a user.
type Watchlist struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;uniqueIndex:idx_watchlists_user_ticker" json:"user_id"`
	Ticker      string    `gorm:"not null;uniqueIndex:idx_watchlists_user_ticker" json:"ticker"`
	CompanyName string    `gorm:"not null" json:"company_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Watchlist model.
func (Watchlist) TableName() string {
	return "watchlists"
}
