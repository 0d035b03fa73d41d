package models

import (
	"time"
)

type Profile struct {
	ID             string         `json:"id" gorm:"primaryKey;size:191"`
	UserID         string         `json:"user" gorm:"uniqueIndex;not null;size:191"`
	Company        string         `json:"company" gorm:"size:255"`
	Website        string         `json:"website" gorm:"size:500"`
	Location       string         `json:"location" gorm:"size:255"`
	Bio            string         `json:"bio"`
	Status         string         `json:"status" gorm:"not null;size:100"`
	GithubUsername string         `json:"githubusername" gorm:"size:100"`
	Skills         StringSlice    `json:"skills" gorm:"type:json"`
	Social         SocialLinks    `json:"social" gorm:"type:json"`
	Experience     ExperienceList `json:"experience" gorm:"type:json"`
	Education      EducationList  `json:"education" gorm:"type:json"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// OwnerID returns the owning user reference, set once at creation.
func (p *Profile) OwnerID() string { return p.UserID }
