package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"motoconnect-api/core"
	"motoconnect-api/middleware"
	"motoconnect-api/models"
	"motoconnect-api/repositories"
	"motoconnect-api/services"
	"motoconnect-api/utils"
)

type ProfileController struct {
	profiles repositories.ProfileStore
	users    repositories.UserStore
	github   *services.GithubService
}

func NewProfileController(profiles repositories.ProfileStore, users repositories.UserStore, github *services.GithubService) *ProfileController {
	return &ProfileController{profiles: profiles, users: users, github: github}
}

func (pc *ProfileController) GetMyProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	profile, err := pc.profiles.FindByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "There is no profile for this user")
			return
		}
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, profile)
}

type UpsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" binding:"required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" binding:"required"`
	Youtube        string `json:"youtube"`
	Facebook       string `json:"facebook"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	Linkedin       string `json:"linkedin"`
}

// UpsertProfile creates the caller's profile or merges the supplied fields
// into the existing one.
func (pc *ProfileController) UpsertProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	existing, err := pc.profiles.FindByUser(userID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		utils.SendServerError(c)
		return
	}

	merged := core.MergeProfile(existing, userID, core.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Facebook:       req.Facebook,
		Twitter:        req.Twitter,
		Instagram:      req.Instagram,
		Linkedin:       req.Linkedin,
	})

	if existing == nil {
		err = pc.profiles.Create(merged)
	} else {
		err = pc.profiles.Save(merged)
	}
	if err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, merged)
}

func (pc *ProfileController) GetAllProfiles(c *gin.Context) {
	profiles, err := pc.profiles.FindAll()
	if err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func (pc *ProfileController) GetProfileByUser(c *gin.Context) {
	profile, err := pc.profiles.FindByUser(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Profile not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteProfileAndUser removes the caller's profile and account.
// TODO: remove the user's posts and motorcycles as well.
func (pc *ProfileController) DeleteProfileAndUser(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	if err := pc.profiles.DeleteByUser(userID); err != nil {
		utils.SendServerError(c)
		return
	}

	if err := pc.users.Delete(userID); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

type AddExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (pc *ProfileController) AddExperience(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	profile, err := pc.loadProfile(userID)
	if err != nil {
		pc.respondProfileError(c, err)
		return
	}

	core.AddExperience(profile, core.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})

	if err := pc.profiles.Save(profile); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) DeleteExperience(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	profile, err := pc.loadProfile(userID)
	if err != nil {
		pc.respondProfileError(c, err)
		return
	}

	if err := core.RemoveExperience(profile, c.Param("exp_id")); err != nil {
		utils.SendError(c, http.StatusNotFound, "Experience not found")
		return
	}

	if err := pc.profiles.Save(profile); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, profile)
}

type AddEducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func (pc *ProfileController) AddEducation(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req AddEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	profile, err := pc.loadProfile(userID)
	if err != nil {
		pc.respondProfileError(c, err)
		return
	}

	core.AddEducation(profile, core.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})

	if err := pc.profiles.Save(profile); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) DeleteEducation(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	profile, err := pc.loadProfile(userID)
	if err != nil {
		pc.respondProfileError(c, err)
		return
	}

	if err := core.RemoveEducation(profile, c.Param("education_id")); err != nil {
		utils.SendError(c, http.StatusNotFound, "Education not found")
		return
	}

	if err := pc.profiles.Save(profile); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) GetGithubRepos(c *gin.Context) {
	repos, err := pc.github.FetchUserRepos(c.Param("username"))
	if err != nil {
		if errors.Is(err, services.ErrNoGithubProfile) {
			utils.SendError(c, http.StatusNotFound, "We can't find a github profile")
			return
		}
		utils.SendServerError(c)
		return
	}

	c.Data(http.StatusOK, "application/json", repos)
}

// loadProfile fetches the caller's profile for the experience/education
// paths, which never auto-create one.
func (pc *ProfileController) loadProfile(userID string) (*models.Profile, error) {
	profile, err := pc.profiles.FindByUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, core.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (pc *ProfileController) respondProfileError(c *gin.Context, err error) {
	if errors.Is(err, core.ErrProfileNotFound) {
		utils.SendError(c, http.StatusNotFound, "Profile not found")
		return
	}
	utils.SendServerError(c)
}
