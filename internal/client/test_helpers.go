package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/daniilsolovey/blog-posts/internal/postlist"
)

var (
	// BaseTime is the publish date of the first test post
	BaseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	// TestCategories are assigned to test posts round-robin
	TestCategories = []string{"Go", "Design", "Ops"}
)

// TestPosts builds n posts. Post i (1-based) is in TestCategories[(i-1)%3] and
// is published i days after BaseTime.
func TestPosts(n int) []postlist.Post {
	posts := make([]postlist.Post, n)
	for i := range posts {
		id := i + 1
		posts[i] = postlist.Post{
			ID:    postlist.PostID(fmt.Sprintf("%d", id)),
			Title: fmt.Sprintf("Post %d", id),
			Author: postlist.Author{
				Name:   fmt.Sprintf("Author %d", id),
				Avatar: fmt.Sprintf("https://example.com/avatars/%d.png", id),
			},
			PublishDate: BaseTime.AddDate(0, 0, id),
			Summary:     fmt.Sprintf("Summary of post %d", id),
			Categories:  []postlist.Category{{Name: TestCategories[i%len(TestCategories)]}},
		}
	}
	return posts
}

// TestPostsJSON is the listing endpoint body for TestPosts(n).
func TestPostsJSON(n int) []byte {
	body, err := json.Marshal(postsResponse{Posts: TestPosts(n)})
	if err != nil {
		panic(fmt.Errorf("marshal test posts: %w", err))
	}
	return body
}

// NewTestUpstream starts a listing endpoint answering every request with
// status and body. The caller closes it.
func NewTestUpstream(status int, body []byte) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PostsPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
}
