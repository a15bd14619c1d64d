package rpc

import "time"

type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      Author    `json:"author"`
	PublishDate time.Time `json:"publishDate"`
	Summary     string    `json:"summary"`
	Categories  []string  `json:"categories"` // names, in upstream order
}

type PageView struct {
	Categories       []string `json:"categories"`
	SelectedCategory string   `json:"selectedCategory"`
	Posts            []Post   `json:"posts"`
	FilteredCount    int      `json:"filteredCount"`
	CurrentPage      int      `json:"currentPage"`
	TotalPages       int      `json:"totalPages"`
	HasPrev          bool     `json:"hasPrev"`
	HasNext          bool     `json:"hasNext"`
}
