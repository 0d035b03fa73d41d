package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// The document-style sub-lists on profiles, posts and motorcycles are
// stored as JSON columns. Each column type implements driver.Valuer and
// sql.Scanner so GORM round-trips the whole array on every save.

func jsonValue(v interface{}) (driver.Value, error) {
	return json.Marshal(v)
}

func jsonScan(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into %T", value, dest)
	}
}

// StringSlice holds an ordered list of strings (skills, accessories).
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return jsonValue(StringSlice{})
	}
	return jsonValue(s)
}

func (s *StringSlice) Scan(value interface{}) error { return jsonScan(value, s) }

func (StringSlice) GormDataType() string { return "json" }

func (s StringSlice) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// SocialLinks maps a platform name to a URL. The mapping is sparse: only
// platforms the user supplied are present.
type SocialLinks map[string]string

func (s SocialLinks) Value() (driver.Value, error) {
	if s == nil {
		return jsonValue(SocialLinks{})
	}
	return jsonValue(s)
}

func (s *SocialLinks) Scan(value interface{}) error { return jsonScan(value, s) }

func (SocialLinks) GormDataType() string { return "json" }

// Reaction is a single love/like entry referencing the reacting user.
type Reaction struct {
	User string `json:"user"`
}

type ReactionList []Reaction

func (r ReactionList) Value() (driver.Value, error) {
	if r == nil {
		return jsonValue(ReactionList{})
	}
	return jsonValue(r)
}

func (r *ReactionList) Scan(value interface{}) error { return jsonScan(value, r) }

func (ReactionList) GormDataType() string { return "json" }

func (r ReactionList) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Reaction(r))
}

// Comment is an embedded comment with a denormalized author snapshot.
type Comment struct {
	ID     string    `json:"id"`
	User   string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

type CommentList []Comment

func (c CommentList) Value() (driver.Value, error) {
	if c == nil {
		return jsonValue(CommentList{})
	}
	return jsonValue(c)
}

func (c *CommentList) Scan(value interface{}) error { return jsonScan(value, c) }

func (CommentList) GormDataType() string { return "json" }

func (c CommentList) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Comment(c))
}

// Experience is a single work-experience entry on a profile.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type ExperienceList []Experience

func (e ExperienceList) Value() (driver.Value, error) {
	if e == nil {
		return jsonValue(ExperienceList{})
	}
	return jsonValue(e)
}

func (e *ExperienceList) Scan(value interface{}) error { return jsonScan(value, e) }

func (ExperienceList) GormDataType() string { return "json" }

func (e ExperienceList) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Experience(e))
}

// Education is a single education entry on a profile.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

type EducationList []Education

func (e EducationList) Value() (driver.Value, error) {
	if e == nil {
		return jsonValue(EducationList{})
	}
	return jsonValue(e)
}

func (e *EducationList) Scan(value interface{}) error { return jsonScan(value, e) }

func (EducationList) GormDataType() string { return "json" }

func (e EducationList) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Education(e))
}

// MaintenanceRecord is a single service entry in a motorcycle's history.
type MaintenanceRecord struct {
	ServiceType string `json:"service_type"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

type MaintenanceList []MaintenanceRecord

func (m MaintenanceList) Value() (driver.Value, error) {
	if m == nil {
		return jsonValue(MaintenanceList{})
	}
	return jsonValue(m)
}

func (m *MaintenanceList) Scan(value interface{}) error { return jsonScan(value, m) }

func (MaintenanceList) GormDataType() string { return "json" }

func (m MaintenanceList) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]MaintenanceRecord(m))
}

// Insurance is the optional insurance block on a motorcycle.
type Insurance struct {
	Provider     string `json:"provider,omitempty"`
	PolicyNumber string `json:"policy_number,omitempty"`
	ValidFrom    string `json:"valid_from,omitempty"`
	ValidTo      string `json:"valid_to,omitempty"`
}

func (i Insurance) Value() (driver.Value, error) { return jsonValue(i) }

func (i *Insurance) Scan(value interface{}) error { return jsonScan(value, i) }

func (Insurance) GormDataType() string { return "json" }
