package postlist

const (
	// AllCategories is the catch-all entry that disables filtering.
	AllCategories = "All"
	// PageSize is the number of posts shown on one page.
	PageSize = 5
)

// Categories returns the catch-all entry followed by the distinct category
// names of posts, in order of first appearance.
func Categories(posts []Post) []string {
	seen := make(map[string]struct{})
	result := []string{AllCategories}

	for _, post := range posts {
		for _, c := range post.Categories {
			if _, ok := seen[c.Name]; ok {
				continue
			}
			seen[c.Name] = struct{}{}
			result = append(result, c.Name)
		}
	}

	return result
}

// HasCategory reports whether name is one of Categories(posts).
func HasCategory(posts []Post, name string) bool {
	if name == AllCategories {
		return true
	}
	for _, post := range posts {
		if post.HasCategory(name) {
			return true
		}
	}
	return false
}

// FilterPosts keeps the posts that carry the selected category. The catch-all
// selection returns posts unchanged.
func FilterPosts(posts []Post, selected string) []Post {
	if selected == AllCategories {
		return posts
	}

	result := make([]Post, 0, len(posts))
	for _, post := range posts {
		if post.HasCategory(selected) {
			result = append(result, post)
		}
	}

	return result
}

// TotalPages returns ceil(count / PageSize). An empty list still has one page.
func TotalPages(count int) int {
	totalPages := (count + PageSize - 1) / PageSize
	if totalPages < 1 {
		return 1
	}
	return totalPages
}

// PagePosts returns the posts of the 1-based page. Pages past the end are empty.
func PagePosts(posts []Post, page int) []Post {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	if start >= len(posts) {
		return []Post{}
	}

	end := min(start+PageSize, len(posts))

	return posts[start:end]
}

func clampPage(page, totalPages int) int {
	return max(1, min(page, totalPages))
}
