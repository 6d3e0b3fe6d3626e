package models

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// ClampPagination normalizes raw page/limit inputs to page >= 1 and
// 1 <= limit <= 50, defaulting limit to 10 when unset.
func ClampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// PostPage is the listing envelope for every paginated post view.
type PostPage struct {
	Items      []PostView `json:"items"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	Total      int64      `json:"total"`
	TotalPages int        `json:"totalPages"`
}

// TotalPages is ceil(total/limit), 0 when total is 0.
func TotalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// PostView is a post with its author resolved at read time.
type PostView struct {
	Post
	Author PublicUser `json:"author"`
}

func (p *Post) View() PostView {
	v := PostView{Post: *p}
	if p.Author != nil {
		v.Author = p.Author.Public()
	}
	v.Post.Author = nil
	return v
}
