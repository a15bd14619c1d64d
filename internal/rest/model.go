package rest

import "time"

type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Category struct {
	Name string `json:"name"`
}

type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Author      Author     `json:"author"`
	PublishDate time.Time  `json:"publishDate"`
	Summary     string     `json:"summary"`
	Categories  []Category `json:"categories"`
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	PageSize    int  `json:"pageSize"`
	HasPrev     bool `json:"hasPrev"`
	HasNext     bool `json:"hasNext"`
}

type PageView struct {
	Categories    []string   `json:"categories"`
	Selected      string     `json:"selectedCategory"`
	Posts         []Post     `json:"posts"`
	FilteredCount int        `json:"filteredCount"`
	Pagination    Pagination `json:"pagination"`
}
