package services

import (
	"strings"

	"plume/models"
	"plume/policy"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create attaches a comment to a published post. The caller may be nil; the
// policy decides whether the draft mask or the authentication failure wins.
// The returned comment carries its author resolved for immediate display.
func (s *CommentService) Create(caller *models.User, postID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.Invalid("comment content is required")
	}

	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		return nil, models.ErrNotFound
	}

	if err := policy.Decide(policy.CallerFor(caller), policy.Resource{Post: &post}, policy.CreateComment); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   post.ID,
		AuthorID: caller.ID,
		Content:  content,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}

	// Read-time join, not a stored denormalization.
	comment.Author = caller
	return comment, nil
}

// Delete removes a comment. Allowed for the comment's author and for the
// parent post's author, who moderates everything under the post.
func (s *CommentService) Delete(caller *models.User, id string) error {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", id).Error; err != nil {
		return models.ErrNotFound
	}

	var post models.Post
	res := policy.Resource{Comment: &comment}
	if err := s.db.First(&post, "id = ?", comment.PostID).Error; err == nil {
		res.Post = &post
	}

	if err := policy.Decide(policy.CallerFor(caller), res, policy.DeleteComment); err != nil {
		return err
	}

	return s.db.Delete(&comment).Error
}
