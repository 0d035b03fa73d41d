package repositories

import (
	"gorm.io/gorm"

	"motoconnect-api/models"
)

type MotorcycleStore interface {
	Create(motorcycle *models.Motorcycle) error
	Save(motorcycle *models.Motorcycle) error
	FindByID(id string) (*models.Motorcycle, error)
	FindAll() ([]models.Motorcycle, error)
	Delete(id string) error
}

type motorcycleRepository struct {
	db *gorm.DB
}

func NewMotorcycleRepository(db *gorm.DB) MotorcycleStore {
	return &motorcycleRepository{db: db}
}

func (r *motorcycleRepository) Create(motorcycle *models.Motorcycle) error {
	return r.db.Create(motorcycle).Error
}

func (r *motorcycleRepository) Save(motorcycle *models.Motorcycle) error {
	return r.db.Save(motorcycle).Error
}

func (r *motorcycleRepository) FindByID(id string) (*models.Motorcycle, error) {
	var motorcycle models.Motorcycle
	if err := r.db.First(&motorcycle, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &motorcycle, nil
}

func (r *motorcycleRepository) FindAll() ([]models.Motorcycle, error) {
	var motorcycles []models.Motorcycle
	if err := r.db.Order("created_at DESC").Find(&motorcycles).Error; err != nil {
		return nil, err
	}
	return motorcycles, nil
}

func (r *motorcycleRepository) Delete(id string) error {
	return r.db.Delete(&models.Motorcycle{}, "id = ?", id).Error
}
