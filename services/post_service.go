package services

import (
	"fmt"
	"strings"
	"time"

	"plume/database"
	"plume/models"
	"plume/policy"
	"plume/utils"

	"gorm.io/gorm"
)

// slugProbeLimit bounds the collision retry loop so a pathological insert
// failure cannot spin forever.
const slugProbeLimit = 1000

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// Create allocates a unique slug for the new draft and inserts it. The probe
// loop checks candidates for convenience, but the unique index on the slug
// column is the authoritative guard: a concurrent writer winning the same
// candidate shows up as a unique violation and allocation moves to the next
// probe.
func (s *PostService) Create(caller *models.User, req *models.CreatePostRequest) (*models.Post, error) {
	if err := policy.Decide(policy.CallerFor(caller), policy.Resource{}, policy.CreatePost); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" || req.Content == "" {
		return nil, models.Invalid("title and content are required")
	}

	post := &models.Post{
		AuthorID:    caller.ID,
		Title:       title,
		Excerpt:     strings.TrimSpace(req.Excerpt),
		ContentType: models.ParseContentType(req.ContentType),
		Content:     req.Content,
		Tags:        models.CleanTags(req.Tags),
		Status:      models.StatusDraft,
	}
	if req.CoverImage != nil && req.CoverImage.URL != "" {
		post.CoverImage = *req.CoverImage
	}

	base := utils.SlugBase(title)
	probe := s.nextFreeProbe(base, 0)
	for attempt := 0; attempt < slugProbeLimit; attempt++ {
		post.Slug = slugCandidate(base, probe)
		err := s.db.Create(post).Error
		if err == nil {
			return post, nil
		}
		if !database.IsUniqueViolation(err) {
			return nil, err
		}
		probe = s.nextFreeProbe(base, probe+1)
	}
	return nil, fmt.Errorf("slug allocation exhausted for %q", base)
}

// nextFreeProbe returns the first probe counter at or after from whose
// candidate is currently unused. Best effort only; the insert may still lose
// a race and come back here.
func (s *PostService) nextFreeProbe(base string, from int) int {
	for probe := from; ; probe++ {
		var count int64
		s.db.Model(&models.Post{}).Where("slug = ?", slugCandidate(base, probe)).Count(&count)
		if count == 0 {
			return probe
		}
	}
}

func slugCandidate(base string, probe int) string {
	if probe == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, probe)
}

// Update applies a partial edit. Only fields present in the request change;
// the slug never does, regardless of title edits. Editing is permitted in
// either state and does not change state.
func (s *PostService) Update(caller *models.User, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.ownedPost(caller, id, policy.EditPost)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if title := strings.TrimSpace(*req.Title); title != "" {
			post.Title = title
		}
	}
	if req.Excerpt != nil {
		post.Excerpt = strings.TrimSpace(*req.Excerpt)
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.ContentType != nil {
		post.ContentType = models.ParseContentType(*req.ContentType)
	}
	if req.Tags != nil {
		post.Tags = models.CleanTags(*req.Tags)
	}
	if req.CoverImage != nil {
		post.CoverImage = *req.CoverImage
	}

	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Publish moves a post to published and stamps publishedAt with now.
// Re-publishing an already-published post is allowed and refreshes the
// timestamp.
func (s *PostService) Publish(caller *models.User, id string) (*models.Post, error) {
	post, err := s.ownedPost(caller, id, policy.PublishPost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.Status = models.StatusPublished
	post.PublishedAt = &now

	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Unpublish returns a post to draft and clears publishedAt.
func (s *PostService) Unpublish(caller *models.User, id string) (*models.Post, error) {
	post, err := s.ownedPost(caller, id, policy.UnpublishPost)
	if err != nil {
		return nil, err
	}

	post.Status = models.StatusDraft
	post.PublishedAt = nil

	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post and every comment under it in one transaction.
func (s *PostService) Delete(caller *models.User, id string) error {
	post, err := s.ownedPost(caller, id, policy.DeletePost)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}

// GetBySlug resolves a post for the detail view along with its comments,
// newest first, each with the author joined at read time. Drafts read as
// absent for everyone but their author.
func (s *PostService) GetBySlug(caller *models.User, slug string) (*models.Post, []models.Comment, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))

	var post models.Post
	if err := s.db.Preload("Author").First(&post, "slug = ?", slug).Error; err != nil {
		return nil, nil, models.ErrNotFound
	}

	if err := policy.Decide(policy.CallerFor(caller), policy.Resource{Post: &post}, policy.ReadPost); err != nil {
		return nil, nil, err
	}

	var comments []models.Comment
	err := s.db.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, nil, err
	}

	return &post, comments, nil
}

// ListPublished is the public listing: published posts only, optional
// case-insensitive free-text match on title/excerpt/content, newest
// publication first.
func (s *PostService) ListPublished(q string, page, limit int) (*models.PostPage, error) {
	page, limit = models.ClampPagination(page, limit)

	query := s.db.Model(&models.Post{}).Where("status = ?", models.StatusPublished)
	if q = strings.TrimSpace(q); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(content) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	err := query.Session(&gorm.Session{}).Preload("Author").
		Order("published_at DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return postPage(posts, page, limit, total), nil
}

// ListMine is the owner listing: the caller's posts in any status, optional
// status filter, most recently updated first. Author role required.
func (s *PostService) ListMine(caller *models.User, status string, page, limit int) (*models.PostPage, error) {
	if err := policy.Decide(policy.CallerFor(caller), policy.Resource{}, policy.ListOwnPosts); err != nil {
		return nil, err
	}

	page, limit = models.ClampPagination(page, limit)

	query := s.db.Model(&models.Post{}).Where("author_id = ?", caller.ID)
	if status == string(models.StatusDraft) || status == string(models.StatusPublished) {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	err := query.Session(&gorm.Session{}).Preload("Author").
		Order("updated_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return postPage(posts, page, limit, total), nil
}

func postPage(posts []models.Post, page, limit int, total int64) *models.PostPage {
	items := make([]models.PostView, 0, len(posts))
	for i := range posts {
		items = append(items, posts[i].View())
	}
	return &models.PostPage{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: models.TotalPages(total, limit),
	}
}

// ownedPost loads a post by id and authorizes a mutating action on it.
// Missing posts are not masked here: mutations already require the author
// role, and the original surface reports 404/403 distinctly for them.
func (s *PostService) ownedPost(caller *models.User, id string, action policy.Action) (*models.Post, error) {
	if err := policy.RequireAuthorRole(policy.CallerFor(caller)); err != nil {
		return nil, err
	}

	var post models.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, models.ErrNotFound
	}

	if err := policy.Decide(policy.CallerFor(caller), policy.Resource{Post: &post}, action); err != nil {
		return nil, err
	}
	return &post, nil
}
