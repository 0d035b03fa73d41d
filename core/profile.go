package core

import (
	"strings"

	"github.com/google/uuid"

	"motoconnect-api/models"
)

// ProfileInput is the sparse field set accepted by the profile upsert.
// Empty string means "field omitted": on update the stored value is kept.
// Status and Skills are validated as required before this layer is reached.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string
	Youtube        string
	Facebook       string
	Twitter        string
	Instagram      string
	Linkedin       string
}

// ParseSkills splits a comma-delimited skills string and trims each
// element. Empty elements are kept, matching the reference behavior.
func ParseSkills(skills string) models.StringSlice {
	parts := strings.Split(skills, ",")
	parsed := make(models.StringSlice, len(parts))
	for i, p := range parts {
		parsed[i] = strings.TrimSpace(p)
	}
	return parsed
}

// SocialFromInput builds the social-link mapping from the supplied subset.
// The mapping replaces the stored one wholesale, so omitted platforms are
// cleared rather than preserved.
func SocialFromInput(in ProfileInput) models.SocialLinks {
	social := models.SocialLinks{}
	if in.Youtube != "" {
		social["youtube"] = in.Youtube
	}
	if in.Facebook != "" {
		social["facebook"] = in.Facebook
	}
	if in.Twitter != "" {
		social["twitter"] = in.Twitter
	}
	if in.Instagram != "" {
		social["instagram"] = in.Instagram
	}
	if in.Linkedin != "" {
		social["linkedin"] = in.Linkedin
	}
	return social
}

// MergeProfile applies the sparse merge to an existing profile, or builds
// a fresh one when existing is nil. Scalar fields overwrite only when
// present in the input; the social map is always replaced.
func MergeProfile(existing *models.Profile, userID string, in ProfileInput) *models.Profile {
	profile := existing
	if profile == nil {
		profile = &models.Profile{
			ID:     uuid.New().String(),
			UserID: userID,
		}
	}

	if in.Company != "" {
		profile.Company = in.Company
	}
	if in.Website != "" {
		profile.Website = in.Website
	}
	if in.Location != "" {
		profile.Location = in.Location
	}
	if in.Bio != "" {
		profile.Bio = in.Bio
	}
	if in.Status != "" {
		profile.Status = in.Status
	}
	if in.GithubUsername != "" {
		profile.GithubUsername = in.GithubUsername
	}
	if in.Skills != "" {
		profile.Skills = ParseSkills(in.Skills)
	}
	profile.Social = SocialFromInput(in)

	return profile
}

// ExperienceInput carries a new work-experience entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// AddExperience front-inserts a new entry so the list reads
// most-recent-first. Callers must have loaded an existing profile; there
// is no auto-creation on this path.
func AddExperience(profile *models.Profile, in ExperienceInput) {
	entry := models.Experience{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	updated := make(models.ExperienceList, 0, len(profile.Experience)+1)
	updated = append(updated, entry)
	updated = append(updated, profile.Experience...)
	profile.Experience = updated
}

// RemoveExperience deletes the entry with the given id.
func RemoveExperience(profile *models.Profile, entryID string) error {
	ids := make([]string, len(profile.Experience))
	for i, e := range profile.Experience {
		ids[i] = e.ID
	}
	removeIndex := indexOf(ids, entryID)
	if removeIndex < 0 {
		return ErrEntryNotFound
	}

	updated := make(models.ExperienceList, 0, len(profile.Experience)-1)
	updated = append(updated, profile.Experience[:removeIndex]...)
	updated = append(updated, profile.Experience[removeIndex+1:]...)
	profile.Experience = updated
	return nil
}

// EducationInput carries a new education entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// AddEducation front-inserts a new entry, same ordering as experience.
func AddEducation(profile *models.Profile, in EducationInput) {
	entry := models.Education{
		ID:           uuid.New().String(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	updated := make(models.EducationList, 0, len(profile.Education)+1)
	updated = append(updated, entry)
	updated = append(updated, profile.Education...)
	profile.Education = updated
}

// RemoveEducation deletes the entry with the given id.
func RemoveEducation(profile *models.Profile, entryID string) error {
	ids := make([]string, len(profile.Education))
	for i, e := range profile.Education {
		ids[i] = e.ID
	}
	removeIndex := indexOf(ids, entryID)
	if removeIndex < 0 {
		return ErrEntryNotFound
	}

	updated := make(models.EducationList, 0, len(profile.Education)-1)
	updated = append(updated, profile.Education[:removeIndex]...)
	updated = append(updated, profile.Education[removeIndex+1:]...)
	profile.Education = updated
	return nil
}
