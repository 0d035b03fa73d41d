package repositories

import (
	"gorm.io/gorm"

	"motoconnect-api/models"
)

type ProfileStore interface {
	Create(profile *models.Profile) error
	Save(profile *models.Profile) error
	FindByUser(userID string) (*models.Profile, error)
	FindAll() ([]models.Profile, error)
	DeleteByUser(userID string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileStore {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) Save(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

func (r *profileRepository) FindByUser(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *profileRepository) FindAll() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) DeleteByUser(userID string) error {
	return r.db.Delete(&models.Profile{}, "user_id = ?", userID).Error
}
