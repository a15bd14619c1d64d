package rest

import "github.com/daniilsolovey/blog-posts/internal/postlist"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPost(p postlist.Post) Post {
	return Post{
		ID:          p.ID.String(),
		Title:       p.Title,
		Author:      Author{Name: p.Author.Name, Avatar: p.Author.Avatar},
		PublishDate: p.PublishDate,
		Summary:     p.Summary,
		Categories:  Map(p.Categories, NewCategory),
	}
}

func NewCategory(c postlist.Category) Category {
	return Category{Name: c.Name}
}

func NewPageView(v postlist.PageView) PageView {
	return PageView{
		Categories:    v.Categories,
		Selected:      v.Selected,
		Posts:         Map(v.Posts, NewPost),
		FilteredCount: v.FilteredCount,
		Pagination: Pagination{
			CurrentPage: v.CurrentPage,
			TotalPages:  v.TotalPages,
			PageSize:    postlist.PageSize,
			HasPrev:     v.HasPrev,
			HasNext:     v.HasNext,
		},
	}
}
