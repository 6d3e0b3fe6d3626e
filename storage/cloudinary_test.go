package storage

import (
	"context"
	"testing"

	"plume/config"
	"plume/models"

	"github.com/stretchr/testify/assert"
)

func TestUploaderUnconfigured(t *testing.T) {
	u := NewCloudinaryUploader(&config.Config{})
	assert.False(t, u.Configured())

	_, err := u.Upload(context.Background(), []byte("x"), "image/png")
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestSignDeterministic(t *testing.T) {
	u := NewCloudinaryUploader(&config.Config{
		CloudinaryCloudName: "demo",
		CloudinaryAPIKey:    "key",
		CloudinaryAPISecret: "secret",
		CloudinaryFolder:    "plume",
	})
	assert.True(t, u.Configured())

	// sha1("folder=plume&timestamp=100" + "secret")
	sig := u.sign("100")
	assert.Len(t, sig, 40)
	assert.Equal(t, sig, u.sign("100"))
	assert.NotEqual(t, sig, u.sign("101"))
}
