package tui

import (
	"context"
	"log/slog"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daniilsolovey/blog-posts/internal/postlist"
)

type postsLoadedMsg struct {
	posts []postlist.Post
}

type postsFailedMsg struct {
	err error
}

// Model is the terminal listing view. The posts are fetched once, by the
// command returned from Init.
type Model struct {
	loader postlist.Loader
	log    *slog.Logger
	state  postlist.ViewState
	width  int
}

func NewModel(loader postlist.Loader, log *slog.Logger) Model {
	return Model{
		loader: loader,
		log:    log,
		state:  postlist.NewViewState(),
	}
}

// State returns the current view state.
func (m Model) State() postlist.ViewState {
	return m.state
}

func (m Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return loadPostsCmd(m.loader)
}

func loadPostsCmd(loader postlist.Loader) tea.Cmd {
	return func() tea.Msg {
		posts, err := loader.Posts(context.Background())
		if err != nil {
			return postsFailedMsg{err: err}
		}
		return postsLoadedMsg{posts: posts}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postsLoadedMsg:
		m.state = m.state.LoadSucceeded(msg.posts)
		m.log.Info("posts loaded", "count", len(msg.posts))
		return m, nil
	case postsFailedMsg:
		m.log.Error("failed to load posts", "error", msg.err)
		m.state = m.state.LoadFailed(msg.err)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h":
			m.state = m.state.PrevPage()
		case "right", "l":
			m.state = m.state.NextPage()
		case "tab", "c":
			m.state = m.cycleCategory(1)
		case "shift+tab", "C":
			m.state = m.cycleCategory(-1)
		}
		return m, nil
	}

	return m, nil
}

// cycleCategory selects the category step entries away from the current one,
// wrapping around the option list.
func (m Model) cycleCategory(step int) postlist.ViewState {
	if m.state.Status() != postlist.StatusReady {
		return m.state
	}

	categories := postlist.Categories(m.state.Posts)
	i := slices.Index(categories, m.state.SelectedCategory)
	next := categories[(max(i, 0)+step+len(categories))%len(categories)]

	state, err := m.state.SelectCategory(next)
	if err != nil {
		m.log.Warn("category not selected", "category", next, "error", err)
		return m.state
	}

	return state
}
