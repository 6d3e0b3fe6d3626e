package policy

import (
	"testing"

	"plume/models"

	"github.com/stretchr/testify/assert"
)

var (
	owner     = Caller{ID: "owner", Role: models.RoleAuthor}
	otherAuth = Caller{ID: "other", Role: models.RoleAuthor}
	reader    = Caller{ID: "reader", Role: models.RoleReader}
	anonymous = Caller{}
)

func draft() *models.Post {
	return &models.Post{ID: "p1", AuthorID: "owner", Status: models.StatusDraft}
}

func published() *models.Post {
	return &models.Post{ID: "p1", AuthorID: "owner", Status: models.StatusPublished}
}

func TestDecidePostMutations(t *testing.T) {
	for _, action := range []Action{EditPost, PublishPost, UnpublishPost, DeletePost} {
		t.Run(string(action), func(t *testing.T) {
			assert.NoError(t, Decide(owner, Resource{Post: draft()}, action))
			assert.ErrorIs(t, Decide(otherAuth, Resource{Post: draft()}, action), models.ErrForbidden)
			assert.ErrorIs(t, Decide(reader, Resource{Post: draft()}, action), models.ErrForbidden)
			assert.ErrorIs(t, Decide(anonymous, Resource{Post: draft()}, action), models.ErrNotAuthenticated)
		})
	}
}

func TestDecideCreatePost(t *testing.T) {
	assert.NoError(t, Decide(owner, Resource{}, CreatePost))
	assert.ErrorIs(t, Decide(reader, Resource{}, CreatePost), models.ErrForbidden)
	assert.ErrorIs(t, Decide(anonymous, Resource{}, CreatePost), models.ErrNotAuthenticated)
}

func TestDecideReadPost(t *testing.T) {
	tests := []struct {
		name    string
		caller  Caller
		post    *models.Post
		wantErr error
	}{
		{name: "anyone reads published", caller: anonymous, post: published()},
		{name: "owner reads own draft", caller: owner, post: draft()},
		{name: "other author cannot read draft", caller: otherAuth, post: draft(), wantErr: models.ErrNotFound},
		{name: "reader cannot read draft", caller: reader, post: draft(), wantErr: models.ErrNotFound},
		{name: "anonymous cannot read draft", caller: anonymous, post: draft(), wantErr: models.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decide(tt.caller, Resource{Post: tt.post}, ReadPost)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDecideCreateComment(t *testing.T) {
	// The draft mask wins over the authentication check: a draft reads
	// as absent even for an anonymous caller.
	assert.ErrorIs(t, Decide(anonymous, Resource{Post: draft()}, CreateComment), models.ErrNotFound)
	assert.ErrorIs(t, Decide(reader, Resource{Post: draft()}, CreateComment), models.ErrNotFound)
	assert.ErrorIs(t, Decide(owner, Resource{Post: draft()}, CreateComment), models.ErrNotFound)

	assert.ErrorIs(t, Decide(anonymous, Resource{Post: published()}, CreateComment), models.ErrNotAuthenticated)
	assert.NoError(t, Decide(reader, Resource{Post: published()}, CreateComment))
	assert.NoError(t, Decide(owner, Resource{Post: published()}, CreateComment))
}

func TestDecideDeleteComment(t *testing.T) {
	comment := &models.Comment{ID: "c1", PostID: "p1", AuthorID: "reader"}

	// Comment author may delete their own comment.
	assert.NoError(t, Decide(reader, Resource{Comment: comment, Post: published()}, DeleteComment))
	// Post author moderates comments under their post.
	assert.NoError(t, Decide(owner, Resource{Comment: comment, Post: published()}, DeleteComment))
	// Anyone else is refused.
	assert.ErrorIs(t, Decide(otherAuth, Resource{Comment: comment, Post: published()}, DeleteComment), models.ErrForbidden)
	assert.ErrorIs(t, Decide(anonymous, Resource{Comment: comment, Post: published()}, DeleteComment), models.ErrNotAuthenticated)
}

func TestDecideUnknownActionDenied(t *testing.T) {
	assert.ErrorIs(t, Decide(owner, Resource{}, Action("run-payroll")), models.ErrForbidden)
}
