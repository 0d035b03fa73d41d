package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"motoconnect-api/core"
	"motoconnect-api/middleware"
	"motoconnect-api/models"
	"motoconnect-api/repositories"
	"motoconnect-api/utils"
)

type MotorcycleController struct {
	motorcycles repositories.MotorcycleStore
	users       repositories.UserStore
}

func NewMotorcycleController(motorcycles repositories.MotorcycleStore, users repositories.UserStore) *MotorcycleController {
	return &MotorcycleController{motorcycles: motorcycles, users: users}
}

type CreateMotorcycleRequest struct {
	Make           string   `json:"make" binding:"required"`
	Model          string   `json:"model" binding:"required"`
	Year           int      `json:"year" binding:"required"`
	Price          float64  `json:"price" binding:"required"`
	Type           string   `json:"type" binding:"required"`
	Status         string   `json:"status" binding:"required"`
	EngineCapacity string   `json:"engine_capacity"`
	Mileage        float64  `json:"mileage"`
	Color          string   `json:"color"`
	Accessories    []string `json:"accessories"`
}

func (mc *MotorcycleController) CreateMotorcycle(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req CreateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	motorcycle := models.Motorcycle{
		ID:             uuid.New().String(),
		UserID:         userID,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		Price:          req.Price,
		Type:           req.Type,
		Status:         req.Status,
		EngineCapacity: req.EngineCapacity,
		Mileage:        req.Mileage,
		Color:          req.Color,
		Accessories:    models.StringSlice(req.Accessories),
		CreatedAt:      time.Now(),
	}

	if err := mc.motorcycles.Create(&motorcycle); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusCreated, motorcycle)
}

func (mc *MotorcycleController) GetMotorcycles(c *gin.Context) {
	motorcycles, err := mc.motorcycles.FindAll()
	if err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, motorcycles)
}

func (mc *MotorcycleController) GetMotorcycle(c *gin.Context) {
	motorcycle, err := mc.motorcycles.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, motorcycle)
}

func (mc *MotorcycleController) DeleteMotorcycle(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	motorcycle, err := mc.motorcycles.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	if err := core.AssertOwner(motorcycle, userID); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "User not authorized to delete this motorcycle")
		return
	}

	if err := mc.motorcycles.Delete(motorcycle.ID); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Motorcycle deleted successfully"})
}

func (mc *MotorcycleController) LoveMotorcycle(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	motorcycle, err := mc.motorcycles.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	loves, err := core.AddReaction(motorcycle.Loves, userID)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "User already loved this motorcycle")
		return
	}

	motorcycle.Loves = loves
	if err := mc.motorcycles.Save(motorcycle); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, motorcycle.Loves)
}

func (mc *MotorcycleController) UnloveMotorcycle(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	motorcycle, err := mc.motorcycles.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	loves, err := core.RemoveReaction(motorcycle.Loves, userID)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "User has not loved motorcycle yet")
		return
	}

	motorcycle.Loves = loves
	if err := mc.motorcycles.Save(motorcycle); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, motorcycle.Loves)
}

type AddMaintenanceRequest struct {
	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

// AddMaintenance records a service entry on the owner's motorcycle.
func (mc *MotorcycleController) AddMaintenance(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req AddMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	motorcycle, err := mc.motorcycles.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	if err := core.AssertOwner(motorcycle, userID); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "User not authorized to update this motorcycle")
		return
	}

	record := models.MaintenanceRecord{
		ServiceType: req.ServiceType,
		Date:        req.Date,
		Description: req.Description,
	}
	history := make(models.MaintenanceList, 0, len(motorcycle.MaintenanceHistory)+1)
	history = append(history, record)
	history = append(history, motorcycle.MaintenanceHistory...)
	motorcycle.MaintenanceHistory = history

	if err := mc.motorcycles.Save(motorcycle); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, motorcycle.MaintenanceHistory)
}

func (mc *MotorcycleController) CreateComment(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	user, err := mc.users.FindByID(userID)
	if err != nil {
		utils.SendServerError(c)
		return
	}

	motorcycle, err := mc.motorcycles.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	motorcycle.Comments = core.AddComment(motorcycle.Comments, core.NewComment(user, req.Text))
	if err := mc.motorcycles.Save(motorcycle); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusCreated, motorcycle.Comments)
}

func (mc *MotorcycleController) DeleteComment(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	motorcycle, err := mc.motorcycles.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	comments, err := core.RemoveComment(motorcycle.Comments, c.Param("comment_id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrCommentNotFound):
			utils.SendError(c, http.StatusNotFound, "Comment does not exist")
		case errors.Is(err, core.ErrUnauthorized):
			utils.SendError(c, http.StatusUnauthorized, "User not authorized to delete this comment")
		default:
			utils.SendServerError(c)
		}
		return
	}

	motorcycle.Comments = comments
	if err := mc.motorcycles.Save(motorcycle); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, motorcycle.Comments)
}
