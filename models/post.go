package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

type ContentType string

const (
	ContentHTML     ContentType = "html"
	ContentMarkdown ContentType = "markdown"
)

// ParseContentType defaults anything that is not exactly "markdown" to html,
// matching the closed enum on the stored document.
func ParseContentType(s string) ContentType {
	if s == string(ContentMarkdown) {
		return ContentMarkdown
	}
	return ContentHTML
}

type CoverImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type Post struct {
	ID          string      `json:"id" gorm:"primaryKey;size:36"`
	AuthorID    string      `json:"author_id" gorm:"size:36;not null;index"`
	Author      *User       `json:"-" gorm:"foreignKey:AuthorID"`
	Title       string      `json:"title" gorm:"not null"`
	Slug        string      `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt     string      `json:"excerpt"`
	ContentType ContentType `json:"content_type" gorm:"size:16;not null;default:html"`
	Content     string      `json:"content" gorm:"type:text"`
	CoverImage  CoverImage  `json:"cover_image" gorm:"embedded;embeddedPrefix:cover_"`
	Tags        []string    `json:"tags" gorm:"serializer:json"`
	Status      PostStatus  `json:"status" gorm:"size:16;not null;default:draft;index"`
	PublishedAt *time.Time  `json:"published_at" gorm:"index"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Published reports whether the post is publicly visible.
func (p *Post) Published() bool {
	return p.Status == StatusPublished
}

type CreatePostRequest struct {
	Title       string      `json:"title" binding:"required"`
	Excerpt     string      `json:"excerpt"`
	ContentType string      `json:"content_type"`
	Content     string      `json:"content" binding:"required"`
	Tags        []string    `json:"tags"`
	CoverImage  *CoverImage `json:"cover_image"`
}

// UpdatePostRequest carries partial-update semantics: only fields present in
// the request body are applied, everything else is left untouched.
type UpdatePostRequest struct {
	Title       *string     `json:"title"`
	Excerpt     *string     `json:"excerpt"`
	ContentType *string     `json:"content_type"`
	Content     *string     `json:"content"`
	Tags        *[]string   `json:"tags"`
	CoverImage  *CoverImage `json:"cover_image"`
}

// CleanTags trims every tag and drops empties.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
