package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	PostID    string    `json:"post_id" gorm:"size:36;not null;index"`
	AuthorID  string    `json:"author_id" gorm:"size:36;not null"`
	Author    *User     `json:"-" gorm:"foreignKey:AuthorID"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentView is a comment with its author resolved at read time, so a
// later author rename shows up on every past comment.
type CommentView struct {
	Comment
	Author PublicUser `json:"author"`
}

func (c *Comment) View() CommentView {
	v := CommentView{Comment: *c}
	if c.Author != nil {
		v.Author = c.Author.Public()
	}
	v.Comment.Author = nil
	return v
}
