package postlist

import (
	"fmt"
	"slices"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

// ViewState is the state of one listing view. It is a value: every event
// returns a new ViewState and leaves the receiver untouched.
type ViewState struct {
	Posts            []Post
	Loading          bool
	Error            string
	SelectedCategory string
	CurrentPage      int
}

// NewViewState returns the state of a freshly mounted view.
func NewViewState() ViewState {
	return ViewState{
		Loading:          true,
		SelectedCategory: AllCategories,
		CurrentPage:      1,
	}
}

func (s ViewState) Status() Status {
	switch {
	case s.Loading:
		return StatusLoading
	case s.Error != "":
		return StatusError
	default:
		return StatusReady
	}
}

// LoadSucceeded stores a copy of posts and leaves the loading state.
// It has no effect once the load has resolved.
func (s ViewState) LoadSucceeded(posts []Post) ViewState {
	if !s.Loading {
		return s
	}

	s.Posts = slices.Clone(posts)
	if s.Posts == nil {
		s.Posts = []Post{}
	}
	s.Loading = false

	return s
}

// LoadFailed records the generic error message. The cause is not kept.
// It has no effect once the load has resolved.
func (s ViewState) LoadFailed(error) ViewState {
	if !s.Loading {
		return s
	}

	s.Loading = false
	s.Error = ErrorMessage

	return s
}

// SelectCategory switches the filter to name and goes back to the first page.
// Only the catch-all and the categories present in the loaded posts are accepted.
func (s ViewState) SelectCategory(name string) (ViewState, error) {
	if s.Status() != StatusReady {
		return s, ErrNotReady
	}

	if !HasCategory(s.Posts, name) {
		return s, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}

	s.SelectedCategory = name
	s.CurrentPage = 1

	return s, nil
}

func (s ViewState) NextPage() ViewState {
	return s.GoToPage(s.CurrentPage + 1)
}

func (s ViewState) PrevPage() ViewState {
	return s.GoToPage(s.CurrentPage - 1)
}

// GoToPage moves to page, clamped to [1, TotalPages].
func (s ViewState) GoToPage(page int) ViewState {
	if s.Status() != StatusReady {
		return s
	}

	s.CurrentPage = clampPage(page, s.TotalPages())

	return s
}

// FilteredPosts returns the posts matching the selected category.
func (s ViewState) FilteredPosts() []Post {
	return FilterPosts(s.Posts, s.SelectedCategory)
}

func (s ViewState) TotalPages() int {
	return TotalPages(len(s.FilteredPosts()))
}

// PageView is everything a surface needs to render one listing page.
type PageView struct {
	Status        Status
	Error         string
	Categories    []string
	Selected      string
	Posts         []Post
	CurrentPage   int
	TotalPages    int
	FilteredCount int
	HasPrev       bool
	HasNext       bool
	PrevPage      int
	NextPage      int
}

// View derives the visible page. Nothing is cached: every call recomputes the
// category list, the filtered set and the page slice from the current posts.
func (s ViewState) View() PageView {
	view := PageView{
		Status:   s.Status(),
		Error:    s.Error,
		Selected: s.SelectedCategory,
	}
	if view.Status != StatusReady {
		return view
	}

	filtered := s.FilteredPosts()
	totalPages := TotalPages(len(filtered))
	currentPage := clampPage(s.CurrentPage, totalPages)

	view.Categories = Categories(s.Posts)
	view.Posts = PagePosts(filtered, currentPage)
	view.CurrentPage = currentPage
	view.TotalPages = totalPages
	view.FilteredCount = len(filtered)
	view.HasPrev = currentPage > 1
	view.HasNext = currentPage < totalPages
	view.PrevPage = max(currentPage-1, 1)
	view.NextPage = min(currentPage+1, totalPages)

	return view
}
