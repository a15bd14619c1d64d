package postlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyState(posts []Post) ViewState {
	return NewViewState().LoadSucceeded(posts)
}

func TestNewViewState(t *testing.T) {
	s := NewViewState()

	assert.True(t, s.Loading)
	assert.Empty(t, s.Posts)
	assert.Empty(t, s.Error)
	assert.Equal(t, AllCategories, s.SelectedCategory)
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, StatusLoading, s.Status())
}

func TestViewState_Load(t *testing.T) {
	t.Run("succeeded", func(t *testing.T) {
		posts := newPosts(3, "Go")
		s := NewViewState().LoadSucceeded(posts)

		assert.Equal(t, StatusReady, s.Status())
		assert.Equal(t, posts, s.Posts)

		posts[0].Title = "changed"
		assert.Equal(t, "Post 1", s.Posts[0].Title, "state must not share the caller slice")
	})

	t.Run("succeeded with nothing", func(t *testing.T) {
		s := NewViewState().LoadSucceeded(nil)

		assert.Equal(t, StatusReady, s.Status())
		assert.NotNil(t, s.Posts)
		assert.Empty(t, s.Posts)
	})

	t.Run("failed", func(t *testing.T) {
		s := NewViewState().LoadFailed(errors.New("connection refused"))

		assert.Equal(t, StatusError, s.Status())
		assert.Equal(t, ErrorMessage, s.Error)
		assert.False(t, s.Loading)
		assert.Empty(t, s.Posts)
	})

	t.Run("resolved state is final", func(t *testing.T) {
		failed := NewViewState().LoadFailed(errors.New("boom"))
		assert.Equal(t, failed, failed.LoadSucceeded(newPosts(2)))

		ready := readyState(newPosts(2))
		assert.Equal(t, ready, ready.LoadFailed(errors.New("boom")))
		assert.Equal(t, ready, ready.LoadSucceeded(newPosts(4)))
	})
}

func TestViewState_SelectCategory(t *testing.T) {
	posts := append(newPosts(12, "Go"), newPost(13, "Design"))

	t.Run("known category resets the page", func(t *testing.T) {
		s := readyState(posts).GoToPage(3)
		require.Equal(t, 3, s.CurrentPage)

		selected, err := s.SelectCategory("Design")
		require.NoError(t, err)

		assert.Equal(t, "Design", selected.SelectedCategory)
		assert.Equal(t, 1, selected.CurrentPage)
		assert.Equal(t, 3, s.CurrentPage, "receiver must stay unchanged")
	})

	t.Run("catch-all", func(t *testing.T) {
		s, err := readyState(posts).SelectCategory("Go")
		require.NoError(t, err)

		s, err = s.SelectCategory(AllCategories)
		require.NoError(t, err)
		assert.Len(t, s.FilteredPosts(), len(posts))
	})

	t.Run("unknown category", func(t *testing.T) {
		s := readyState(posts)

		selected, err := s.SelectCategory("Rust")
		assert.True(t, errors.Is(err, ErrUnknownCategory))
		assert.Equal(t, s, selected)
	})

	t.Run("not ready", func(t *testing.T) {
		_, err := NewViewState().SelectCategory(AllCategories)
		assert.ErrorIs(t, err, ErrNotReady)

		_, err = NewViewState().LoadFailed(errors.New("boom")).SelectCategory(AllCategories)
		assert.ErrorIs(t, err, ErrNotReady)
	})
}

func TestViewState_Navigation(t *testing.T) {
	t.Run("seven posts", func(t *testing.T) {
		posts := newPosts(7)
		s := readyState(posts)

		view := s.View()
		assert.Equal(t, 2, view.TotalPages)
		assert.Equal(t, posts[:5], view.Posts)
		assert.False(t, view.HasPrev)
		assert.True(t, view.HasNext)

		s = s.NextPage()
		view = s.View()
		assert.Equal(t, 2, view.CurrentPage)
		assert.Equal(t, posts[5:], view.Posts)
		assert.True(t, view.HasPrev)
		assert.False(t, view.HasNext)
	})

	t.Run("next on the last page is a no-op", func(t *testing.T) {
		s := readyState(newPosts(7)).NextPage()
		assert.Equal(t, s, s.NextPage())
	})

	t.Run("previous on the first page is a no-op", func(t *testing.T) {
		s := readyState(newPosts(7))
		assert.Equal(t, s, s.PrevPage())
	})

	t.Run("page stays in range for any sequence", func(t *testing.T) {
		for _, n := range []int{0, 1, 5, 6, 11, 23} {
			s := readyState(newPosts(n))
			totalPages := s.TotalPages()

			steps := []func(ViewState) ViewState{
				ViewState.NextPage, ViewState.NextPage, ViewState.PrevPage,
				ViewState.NextPage, ViewState.NextPage, ViewState.NextPage,
				ViewState.NextPage, ViewState.PrevPage, ViewState.PrevPage,
				ViewState.PrevPage, ViewState.PrevPage, ViewState.PrevPage,
			}
			for _, step := range steps {
				s = step(s)
				assert.GreaterOrEqual(t, s.CurrentPage, 1)
				assert.LessOrEqual(t, s.CurrentPage, max(totalPages, 1))
			}
		}
	})

	t.Run("go to page clamps", func(t *testing.T) {
		s := readyState(newPosts(11))

		assert.Equal(t, 3, s.GoToPage(42).CurrentPage)
		assert.Equal(t, 1, s.GoToPage(-4).CurrentPage)
		assert.Equal(t, 2, s.GoToPage(2).CurrentPage)
	})

	t.Run("ignored while loading", func(t *testing.T) {
		s := NewViewState()
		assert.Equal(t, s, s.NextPage())
	})
}

func TestViewState_View(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		view := NewViewState().View()

		assert.Equal(t, StatusLoading, view.Status)
		assert.Empty(t, view.Posts)
		assert.Empty(t, view.Categories)
	})

	t.Run("error", func(t *testing.T) {
		view := NewViewState().LoadFailed(errors.New("boom")).View()

		assert.Equal(t, StatusError, view.Status)
		assert.Equal(t, ErrorMessage, view.Error)
		assert.Empty(t, view.Posts)
	})

	t.Run("nothing to show", func(t *testing.T) {
		view := readyState(nil).View()

		assert.Equal(t, []string{AllCategories}, view.Categories)
		assert.Empty(t, view.Posts)
		assert.Equal(t, 0, view.FilteredCount)
		assert.Equal(t, 1, view.TotalPages)
		assert.Equal(t, 1, view.CurrentPage)
		assert.False(t, view.HasPrev)
		assert.False(t, view.HasNext)
	})

	t.Run("filtered", func(t *testing.T) {
		posts := []Post{
			newPost(1, "Go"),
			newPost(2, "Design"),
			newPost(3, "Go", "Design"),
		}
		s, err := readyState(posts).SelectCategory("Design")
		require.NoError(t, err)

		view := s.View()
		assert.Equal(t, "Design", view.Selected)
		assert.Equal(t, []string{AllCategories, "Go", "Design"}, view.Categories)
		assert.Equal(t, 2, view.FilteredCount)
		require.Len(t, view.Posts, 2)
		assert.Equal(t, PostID("post-2"), view.Posts[0].ID)
		assert.Equal(t, PostID("post-3"), view.Posts[1].ID)
	})

	t.Run("out of range page is clamped", func(t *testing.T) {
		s := readyState(newPosts(7))
		s.CurrentPage = 9

		view := s.View()
		assert.Equal(t, 2, view.CurrentPage)
		assert.Len(t, view.Posts, 2)
	})
}
