package main

import (
	"log"

	"plume/config"
	"plume/controllers"
	"plume/database"
	"plume/middleware"
	"plume/render"
	"plume/routes"
	"plume/storage"
	"plume/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "plume/docs"
)

// @title Plume API
// @version 1.0
// @description A publishing backend for long-form posts with drafts, publishing and comments

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	tokens := utils.NewTokenManager(cfg.JWTSecret)
	renderer := render.New()
	uploader := storage.NewCloudinaryUploader(cfg)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.Logger())
	r.Use(middleware.ErrorHandler())

	authController := controllers.NewAuthController(db, tokens)
	postController := controllers.NewPostController(db, renderer)
	commentController := controllers.NewCommentController(db)
	uploadController := controllers.NewUploadController(uploader)

	routes.SetupRoutes(r, db, tokens, authController, postController, commentController, uploadController)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
