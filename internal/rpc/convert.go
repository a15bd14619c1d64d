package rpc

import "github.com/daniilsolovey/blog-posts/internal/postlist"

func NewPost(p postlist.Post) Post {
	return Post{
		ID:          p.ID.String(),
		Title:       p.Title,
		Author:      Author{Name: p.Author.Name, Avatar: p.Author.Avatar},
		PublishDate: p.PublishDate,
		Summary:     p.Summary,
		Categories:  p.CategoryNames(),
	}
}

func NewPosts(list []postlist.Post) []Post {
	result := make([]Post, len(list))
	for i := range list {
		result[i] = NewPost(list[i])
	}
	return result
}

func NewPageView(v postlist.PageView) PageView {
	return PageView{
		Categories:       v.Categories,
		SelectedCategory: v.Selected,
		Posts:            NewPosts(v.Posts),
		FilteredCount:    v.FilteredCount,
		CurrentPage:      v.CurrentPage,
		TotalPages:       v.TotalPages,
		HasPrev:          v.HasPrev,
		HasNext:          v.HasNext,
	}
}
