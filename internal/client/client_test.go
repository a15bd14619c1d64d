package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-posts/internal/postlist"
)

const postsJSON = `{
  "posts": [
    {
      "id": "2d8f4c6e",
      "title": "Scaling the blog",
      "author": {"name": "Ada Fox", "avatar": "https://example.com/ada.png"},
      "publishDate": "2021-03-04T10:00:00Z",
      "summary": "How we scaled.",
      "categories": [{"name": "Ops"}, {"name": "Go"}]
    },
    {
      "id": 17,
      "title": "Design notes",
      "author": {"name": "Ben Park", "avatar": "https://example.com/ben.png"},
      "publishDate": "2020-11-20T08:30:00.000Z",
      "summary": "Notes.",
      "categories": []
    }
  ]
}`

func newUpstream(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.URL+"/", srv.Client())
}

func TestClient_Posts(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, PostsPath, r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(postsJSON))
		})

		posts, err := c.Posts(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)

		assert.Equal(t, postlist.PostID("2d8f4c6e"), posts[0].ID)
		assert.Equal(t, "Scaling the blog", posts[0].Title)
		assert.Equal(t, "Ada Fox", posts[0].Author.Name)
		assert.Equal(t, "https://example.com/ada.png", posts[0].Author.Avatar)
		assert.Equal(t, time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC), posts[0].PublishDate)
		assert.Equal(t, []string{"Ops", "Go"}, posts[0].CategoryNames())

		assert.Equal(t, postlist.PostID("17"), posts[1].ID)
		assert.Empty(t, posts[1].Categories)
	})

	t.Run("empty collection", func(t *testing.T) {
		c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"posts": []}`))
		})

		posts, err := c.Posts(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("iso 8601 dates", func(t *testing.T) {
		tests := []struct {
			date string
			want time.Time
		}{
			{"2021-03-04T10:00:00Z", time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)},
			{"2021-03-04T10:00:00.250+02:00", time.Date(2021, 3, 4, 8, 0, 0, 250e6, time.UTC)},
			{"2021-03-04T10:00:00+0100", time.Date(2021, 3, 4, 9, 0, 0, 0, time.UTC)},
			{"2021-03-04T10:00:00", time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)},
			{"2021-03-04", time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)},
		}

		for _, tt := range tests {
			c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"posts": [{"id": "1", "title": "Dated", "publishDate": "` + tt.date + `"}]}`))
			})

			posts, err := c.Posts(ctx)
			require.NoError(t, err, tt.date)
			require.Len(t, posts, 1, tt.date)
			assert.True(t, tt.want.Equal(posts[0].PublishDate), "%s decoded as %s", tt.date, posts[0].PublishDate)
			assert.Equal(t, postlist.PostID("1"), posts[0].ID)
			assert.Equal(t, "Dated", posts[0].Title)
		}
	})

	t.Run("missing publish date", func(t *testing.T) {
		c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"posts": [{"id": 3, "title": "Undated"}]}`))
		})

		posts, err := c.Posts(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.True(t, posts[0].PublishDate.IsZero())
		assert.Empty(t, posts[0].PublishedDate())
	})

	failures := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>maintenance</html>"))
			},
		},
		{
			name: "missing posts array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"items": []}`))
			},
		},
		{
			name: "date with a bad month",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"posts": [{"id": "1", "publishDate": "2021-13-04"}]}`))
			},
		},
		{
			name: "one malformed post",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"posts": [{"id": "1", "publishDate": "yesterday"}]}`))
			},
		},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			c := newUpstream(t, tt.handler)

			posts, err := c.Posts(ctx)
			assert.ErrorIs(t, err, postlist.ErrLoadFailed)
			assert.Nil(t, posts)
		})
	}

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := New(srv.URL, nil).Posts(ctx)
		assert.ErrorIs(t, err, postlist.ErrLoadFailed)
	})
}

func TestClient_URL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000/api/posts", New("http://localhost:3000/", nil).URL())
	assert.Equal(t, "/api/posts", New("", nil).URL())
}
