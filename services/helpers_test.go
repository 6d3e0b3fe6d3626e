package services

import (
	"testing"

	"plume/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory database for one test. A single connection
// keeps concurrent test writers serialized the way a real pool would be.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Name:  name,
		Email: name + "@example.com",
		Role:  role,
	}
	require.NoError(t, user.SetPassword("correct-horse"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, title string) *models.Post {
	t.Helper()

	post, err := NewPostService(db).Create(author, &models.CreatePostRequest{
		Title:   title,
		Content: "<p>body</p>",
	})
	require.NoError(t, err)
	return post
}

func publishPost(t *testing.T, db *gorm.DB, author *models.User, post *models.Post) *models.Post {
	t.Helper()

	published, err := NewPostService(db).Publish(author, post.ID)
	require.NoError(t, err)
	return published
}
