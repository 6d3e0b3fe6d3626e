package controllers

import (
	"net/http"
	"strconv"

	"plume/middleware"
	"plume/models"
	"plume/render"
	"plume/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	postService *services.PostService
	renderer    *render.Renderer
}

func NewPostController(db *gorm.DB, renderer *render.Renderer) *PostController {
	return &PostController{
		postService: services.NewPostService(db),
		renderer:    renderer,
	}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// List godoc
// @Summary Public listing of published posts
// @Tags posts
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (1-50)"
// @Param q query string false "Free-text filter on title/excerpt/content"
// @Success 200 {object} models.PostPage
// @Router /posts [get]
func (pc *PostController) List(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := pc.postService.ListPublished(c.Query("q"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMine godoc
// @Summary The caller's own posts in any status
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size (1-50)"
// @Param status query string false "Optional status filter (draft|published)"
// @Success 200 {object} models.PostPage
// @Failure 403 {object} map[string]interface{}
// @Router /posts/mine [get]
func (pc *PostController) ListMine(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := pc.postService.ListMine(middleware.CurrentUser(c), c.Query("status"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get godoc
// @Summary Post detail by slug, with comments
// @Description Drafts are only visible to their author; everyone else gets 404.
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /posts/{slug} [get]
func (pc *PostController) Get(c *gin.Context) {
	post, comments, err := pc.postService.GetBySlug(middleware.CurrentUser(c), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	rendered, err := pc.renderer.HTML(post.ContentType, post.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]models.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, comments[i].View())
	}

	c.JSON(http.StatusOK, gin.H{
		"post":         post.View(),
		"renderedHtml": rendered,
		"comments":     views,
	})
}

// Create godoc
// @Summary Create a draft post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePostRequest true "Post payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /posts [post]
func (pc *PostController) Create(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.postService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": post})
}

// Update godoc
// @Summary Partially update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Param request body models.UpdatePostRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /posts/{id} [put]
func (pc *PostController) Update(c *gin.Context) {
	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.postService.Update(middleware.CurrentUser(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

// Publish godoc
// @Summary Publish a draft (or re-stamp a published post)
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /posts/{id}/publish [post]
func (pc *PostController) Publish(c *gin.Context) {
	post, err := pc.postService.Publish(middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

// Unpublish godoc
// @Summary Return a published post to draft
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /posts/{id}/unpublish [post]
func (pc *PostController) Unpublish(c *gin.Context) {
	post, err := pc.postService.Unpublish(middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

// Delete godoc
// @Summary Delete a post and all its comments
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /posts/{id} [delete]
func (pc *PostController) Delete(c *gin.Context) {
	if err := pc.postService.Delete(middleware.CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
