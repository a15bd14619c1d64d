package postlist

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
)

// Loader fetches the full post collection.
type Loader interface {
	Posts(ctx context.Context) ([]Post, error)
}

// Manager owns the state of a mounted listing view. The posts are fetched
// once per Manager and never again.
type Manager struct {
	log   *slog.Logger
	once  sync.Once
	mu    sync.RWMutex
	state ViewState
}

func NewManager(log *slog.Logger) *Manager {
	return &Manager{
		log:   log,
		state: NewViewState(),
	}
}

// Mount performs the single fetch of the view and returns its error, if any.
// Calls after the first one do nothing and return nil.
func (m *Manager) Mount(ctx context.Context, loader Loader) error {
	var loadErr error

	m.once.Do(func() {
		m.log.Info("loading posts")

		posts, err := loader.Posts(ctx)

		m.mu.Lock()
		defer m.mu.Unlock()

		if err != nil {
			m.log.Error("failed to load posts", "error", err)
			m.state = m.state.LoadFailed(err)
			loadErr = err
			return
		}

		m.state = m.state.LoadSucceeded(posts)
		m.log.Info("posts loaded", "count", len(posts))
	})

	return loadErr
}

// State returns a snapshot of the view state.
func (m *Manager) State() ViewState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

// View applies a category selection and a page change to the current state
// and derives the resulting page. A nil argument keeps the default.
func (m *Manager) View(category *string, page *int) (PageView, error) {
	state := m.State()
	if state.Status() != StatusReady {
		return state.View(), nil
	}

	if category != nil {
		selected, err := state.SelectCategory(*category)
		if err != nil {
			return PageView{}, fmt.Errorf("select category: %w", err)
		}
		state = selected
	}

	if page != nil {
		state = state.GoToPage(*page)
	}

	return state.View(), nil
}

// ParsePage reads a 1-based page number from a query value. Empty means the
// first page.
func ParsePage(value string) (int, error) {
	if value == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid page %q: %w", value, err)
	}

	return page, nil
}
