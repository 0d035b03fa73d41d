package repositories

import (
	"gorm.io/gorm"

	"motoconnect-api/models"
)

type PostStore interface {
	Create(post *models.Post) error
	Save(post *models.Post) error
	FindByID(id string) (*models.Post, error)
	FindAll() ([]models.Post, error)
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostStore {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) Save(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) FindByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *postRepository) FindAll() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Delete(id string) error {
	return r.db.Delete(&models.Post{}, "id = ?", id).Error
}
