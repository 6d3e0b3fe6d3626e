package routes

import (
	"net/http"

	"plume/controllers"
	"plume/middleware"
	"plume/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(
	r *gin.Engine,
	db *gorm.DB,
	tokens *utils.TokenManager,
	authController *controllers.AuthController,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	uploadController *controllers.UploadController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", middleware.AuthRequired(tokens, db), authController.Me)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", postController.List)
			posts.GET("/mine", middleware.AuthRequired(tokens, db), postController.ListMine)
			// Detail resolves the caller when present so an author can
			// see their own drafts.
			posts.GET("/:slug", middleware.AuthOptional(tokens, db), postController.Get)

			posts.POST("", middleware.AuthRequired(tokens, db), postController.Create)
			posts.PUT("/:id", middleware.AuthRequired(tokens, db), postController.Update)
			posts.POST("/:id/publish", middleware.AuthRequired(tokens, db), postController.Publish)
			posts.POST("/:id/unpublish", middleware.AuthRequired(tokens, db), postController.Unpublish)
			posts.DELETE("/:id", middleware.AuthRequired(tokens, db), postController.Delete)
		}

		comments := api.Group("/comments")
		{
			// Optional auth: on a draft post the masking 404 must win
			// over the 401, so the policy decides, not the router.
			comments.POST("/:postId", middleware.AuthOptional(tokens, db), commentController.Create)
			comments.DELETE("/:id", middleware.AuthRequired(tokens, db), commentController.Delete)
		}

		uploads := api.Group("/uploads")
		uploads.Use(middleware.AuthRequired(tokens, db))
		{
			uploads.POST("/image", uploadController.UploadImage)
		}
	}
}
