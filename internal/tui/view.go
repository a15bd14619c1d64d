package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daniilsolovey/blog-posts/internal/postlist"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Underline(true)
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	postStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	postTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	avatarStyle    = lipgloss.NewStyle().Faint(true)
	enabledStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	disabledStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle      = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

const helpText = "←/h previous • →/l next • tab/c category • q quit"

func (m Model) View() string {
	view := m.state.View()

	switch view.Status {
	case postlist.StatusLoading:
		return "Loading...\n"
	case postlist.StatusError:
		return errorStyle.Render(view.Error) + "\n"
	}

	sections := []string{
		titleStyle.Render("Posts"),
		renderFilter(view),
		"",
	}

	for _, post := range view.Posts {
		sections = append(sections, m.renderPost(post))
	}

	sections = append(sections, "", renderPagination(view), helpStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func renderFilter(view postlist.PageView) string {
	options := make([]string, len(view.Categories))
	for i, category := range view.Categories {
		if category == view.Selected {
			options[i] = selectedStyle.Render("[" + category + "]")
		} else {
			options[i] = optionStyle.Render(" " + category + " ")
		}
	}

	return labelStyle.Render("Filter by category: ") + strings.Join(options, " ")
}

func (m Model) renderPost(post postlist.Post) string {
	lines := []string{
		postTitleStyle.Render(post.Title),
		"Author: " + post.Author.Name + " " + avatarStyle.Render("("+post.Author.Avatar+")"),
		"Publish Date: " + post.PublishedDate(),
		"Summary: " + post.Summary,
		"Categories: " + post.CategoryList(),
	}

	style := postStyle
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}

	return style.Render(strings.Join(lines, "\n"))
}

func renderPagination(view postlist.PageView) string {
	prev, next := disabledStyle, disabledStyle
	if view.HasPrev {
		prev = enabledStyle
	}
	if view.HasNext {
		next = enabledStyle
	}

	return fmt.Sprintf("%s  %s  %s",
		prev.Render("‹ Previous"),
		fmt.Sprintf("Page %d of %d", view.CurrentPage, view.TotalPages),
		next.Render("Next ›"),
	)
}
