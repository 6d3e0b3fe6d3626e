package controllers

import (
	"net/http"

	"plume/middleware"
	"plume/models"
	"plume/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	commentService *services.CommentService
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{
		commentService: services.NewCommentService(db),
	}
}

// Create godoc
// @Summary Comment on a published post
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post id"
// @Param request body models.CreateCommentRequest true "Comment payload"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /comments/{postId} [post]
func (cc *CommentController) Create(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.commentService.Create(middleware.CurrentUser(c), c.Param("postId"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": comment.View()})
}

// Delete godoc
// @Summary Delete a comment
// @Description Allowed for the comment's author and the parent post's author.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment id"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /comments/{id} [delete]
func (cc *CommentController) Delete(c *gin.Context) {
	if err := cc.commentService.Delete(middleware.CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
