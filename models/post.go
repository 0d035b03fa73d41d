package models

import (
	"time"
)

type Post struct {
	ID        string       `json:"id" gorm:"primaryKey;size:191"`
	UserID    string       `json:"user" gorm:"not null;index;size:191"`
	Text      string       `json:"text" gorm:"not null"`
	Name      string       `json:"name" gorm:"size:255"`
	Avatar    string       `json:"avatar" gorm:"size:500"`
	Likes     ReactionList `json:"likes" gorm:"type:json"`
	Comments  CommentList  `json:"comments" gorm:"type:json"`
	CreatedAt time.Time    `json:"date"`
	UpdatedAt time.Time    `json:"-"`
}

// OwnerID returns the owning user reference, set once at creation.
func (p *Post) OwnerID() string { return p.UserID }
