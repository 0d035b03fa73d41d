package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motoconnect-api/config"
	"motoconnect-api/controllers"
	"motoconnect-api/middleware"
	"motoconnect-api/repositories"
	"motoconnect-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Stores
	users := repositories.NewUserRepository(db)
	profiles := repositories.NewProfileRepository(db)
	posts := repositories.NewPostRepository(db)
	motorcycles := repositories.NewMotorcycleRepository(db)

	// Controllers
	authController := controllers.NewAuthController(users, cfg.JWTSecret, emailService)
	profileController := controllers.NewProfileController(profiles, users, services.NewGithubService(cfg))
	postController := controllers.NewPostController(posts, users)
	motorcycleController := controllers.NewMotorcycleController(motorcycles, users)

	Register(r, cfg.JWTSecret, authController, profileController, postController, motorcycleController)
}

// Register wires the HTTP surface onto the engine. Split from SetupRoutes
// so tests can mount controllers backed by in-memory stores.
func Register(
	r *gin.Engine,
	jwtSecret string,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	postController *controllers.PostController,
	motorcycleController *controllers.MotorcycleController,
) {
	auth := middleware.AuthMiddleware(jwtSecret)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "API Running")
	})

	api := r.Group("/api")

	// Registration and login
	api.POST("/users", authController.Register)
	api.POST("/auth", authController.Login)
	api.GET("/auth", auth, authController.GetAuthUser)

	// Profiles
	profile := api.Group("/profile")
	{
		profile.GET("/me", auth, profileController.GetMyProfile)
		profile.POST("", auth, profileController.UpsertProfile)
		profile.GET("", profileController.GetAllProfiles)
		profile.GET("/user/:user_id", profileController.GetProfileByUser)
		profile.DELETE("", auth, profileController.DeleteProfileAndUser)
		profile.PUT("/experience", auth, profileController.AddExperience)
		profile.DELETE("/experience/:exp_id", auth, profileController.DeleteExperience)
		profile.PUT("/education", auth, profileController.AddEducation)
		profile.DELETE("/education/:education_id", auth, profileController.DeleteEducation)
		profile.GET("/github/:username", profileController.GetGithubRepos)
	}

	// Posts
	postsGroup := api.Group("/posts")
	postsGroup.Use(auth)
	{
		postsGroup.POST("", postController.CreatePost)
		postsGroup.GET("", postController.GetPosts)
		postsGroup.GET("/:id", postController.GetPost)
		postsGroup.DELETE("/:id", postController.DeletePost)
		postsGroup.PUT("/like/:id", postController.LikePost)
		postsGroup.PUT("/unlike/:id", postController.UnlikePost)
		postsGroup.POST("/comment/:id", postController.CreateComment)
		postsGroup.DELETE("/comment/:id/:comment_id", postController.DeleteComment)
	}

	// Motorcycles
	motorcyclesGroup := api.Group("/motorcycles")
	motorcyclesGroup.Use(auth)
	{
		motorcyclesGroup.POST("", motorcycleController.CreateMotorcycle)
		motorcyclesGroup.GET("", motorcycleController.GetMotorcycles)
		motorcyclesGroup.GET("/:id", motorcycleController.GetMotorcycle)
		motorcyclesGroup.DELETE("/:id", motorcycleController.DeleteMotorcycle)
		motorcyclesGroup.PUT("/love/:id", motorcycleController.LoveMotorcycle)
		motorcyclesGroup.PUT("/unlove/:id", motorcycleController.UnloveMotorcycle)
		motorcyclesGroup.PUT("/maintenance/:id", motorcycleController.AddMaintenance)
		motorcyclesGroup.POST("/comment/:id", motorcycleController.CreateComment)
		motorcyclesGroup.DELETE("/comment/:id/:comment_id", motorcycleController.DeleteComment)
	}
}
