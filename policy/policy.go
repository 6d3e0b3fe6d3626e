// Package policy is the single authorization decision point. Every mutating
// and read operation asks Decide before touching storage; no handler carries
// its own role or ownership checks.
package policy

import (
	"plume/models"
)

type Action string

const (
	CreatePost    Action = "create-post"
	ReadPost      Action = "read-post"
	EditPost      Action = "edit-post"
	PublishPost   Action = "publish"
	UnpublishPost Action = "unpublish"
	DeletePost    Action = "delete-post"
	ListOwnPosts  Action = "list-own-posts"
	CreateComment Action = "create-comment"
	DeleteComment Action = "delete-comment"
	UploadImage   Action = "upload-image"
)

// Caller is the resolved identity making a request. The zero value is the
// anonymous caller.
type Caller struct {
	ID   string
	Role models.Role
}

func (c Caller) Anonymous() bool { return c.ID == "" }

// CallerFor adapts a loaded user (nil for no credential) to a Caller.
func CallerFor(u *models.User) Caller {
	if u == nil {
		return Caller{}
	}
	return Caller{ID: u.ID, Role: u.Role}
}

// Resource carries whichever documents the action targets. Post must be set
// for every post action and for comment creation; Comment additionally for
// comment deletion, with Post as its parent.
type Resource struct {
	Post    *models.Post
	Comment *models.Comment
}

// Decide returns nil to allow, or one of the models sentinel errors to deny.
// Denials on reads (and on writes against resources the caller cannot see)
// come back as ErrNotFound rather than ErrForbidden so that the existence of
// a draft is never confirmed to a non-owner.
func Decide(caller Caller, res Resource, action Action) error {
	switch action {
	case CreatePost, ListOwnPosts, UploadImage:
		return RequireAuthorRole(caller)

	case EditPost, PublishPost, UnpublishPost, DeletePost:
		if err := RequireAuthorRole(caller); err != nil {
			return err
		}
		if res.Post == nil || res.Post.AuthorID != caller.ID {
			return models.ErrForbidden
		}
		return nil

	case ReadPost:
		if res.Post == nil {
			return models.ErrNotFound
		}
		if res.Post.Published() || res.Post.AuthorID == caller.ID {
			return nil
		}
		return models.ErrNotFound

	case CreateComment:
		// Visibility masking takes precedence: a draft reads as absent
		// even before the authentication check.
		if res.Post == nil || !res.Post.Published() {
			return models.ErrNotFound
		}
		if caller.Anonymous() {
			return models.ErrNotAuthenticated
		}
		return nil

	case DeleteComment:
		if caller.Anonymous() {
			return models.ErrNotAuthenticated
		}
		if res.Comment == nil {
			return models.ErrNotFound
		}
		if res.Comment.AuthorID == caller.ID {
			return nil
		}
		if res.Post != nil && res.Post.AuthorID == caller.ID {
			return nil
		}
		return models.ErrForbidden
	}

	// Nothing is allowed by default.
	return models.ErrForbidden
}

// RequireAuthorRole is the role gate shared by every post mutation; callers
// use it to fail fast before loading the target document.
func RequireAuthorRole(caller Caller) error {
	if caller.Anonymous() {
		return models.ErrNotAuthenticated
	}
	if caller.Role != models.RoleAuthor {
		return models.ErrForbidden
	}
	return nil
}
