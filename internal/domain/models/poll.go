package models

import "time"

// Poll statuses
const (
	PollStatusActive = "Active"
	PollStatusClosed = "Closed"
)

// Poll choices
const (
	PollChoiceOption1 = "option1"
	PollChoiceOption2 = "option2"
)

// Poll is a two-option vote run by an Admin for their residents
type Poll struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Question  string    `gorm:"type:varchar(200);not null" json:"question"`
	Option1   string    `gorm:"type:varchar(100);not null" json:"option1"`
	Option2   string    `gorm:"type:varchar(100);not null" json:"option2"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	AdminID   uint      `gorm:"index;not null" json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Votes []PollVote `gorm:"foreignKey:PollID" json:"votes,omitempty"`
}

// PollVote records one resident's choice. The unique (user_id, poll_id)
// index is what enforces the one-vote-per-resident invariant.
type PollVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_poll_votes_user_poll" json:"user_id"`
	PollID    uint      `gorm:"not null;uniqueIndex:idx_poll_votes_user_poll" json:"poll_id"`
	Choice    string    `gorm:"type:varchar(10);not null" json:"choice"`
	CreatedAt time.Time `json:"created_at"`
}
