package postlist

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Category struct {
	Name string `json:"name"`
}

// PostID is the upstream identifier of a post. The listing endpoint is free to
// send it as a JSON string or number, so both are accepted.
type PostID string

func (id *PostID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PostID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("post id must be a string or a number: %w", err)
	}
	*id = PostID(n.String())

	return nil
}

type Post struct {
	ID          PostID     `json:"id"`
	Title       string     `json:"title"`
	Author      Author     `json:"author"`
	PublishDate time.Time  `json:"publishDate"`
	Summary     string     `json:"summary"`
	Categories  []Category `json:"categories"`
}

// CategoryNames returns the names of the post categories in their original order.
func (p Post) CategoryNames() []string {
	names := make([]string, len(p.Categories))
	for i := range p.Categories {
		names[i] = p.Categories[i].Name
	}
	return names
}

// CategoryList returns the category names joined with ", ".
func (p Post) CategoryList() string {
	return strings.Join(p.CategoryNames(), ", ")
}

// HasCategory reports whether one of the post categories is named name.
func (p Post) HasCategory(name string) bool {
	for _, c := range p.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// publishDateLayouts are the ISO 8601 forms accepted for publishDate, tried in order.
// Values without a zone are read as UTC.
var publishDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParsePublishDate parses an ISO 8601 date or date-time.
func ParsePublishDate(value string) (time.Time, error) {
	for _, layout := range publishDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("publish date %q is not an ISO 8601 date", value)
}

func (p *Post) UnmarshalJSON(data []byte) error {
	type post Post
	aux := struct {
		*post
		PublishDate *string `json:"publishDate"`
	}{post: (*post)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	p.PublishDate = time.Time{}
	if aux.PublishDate == nil || *aux.PublishDate == "" {
		return nil
	}

	t, err := ParsePublishDate(*aux.PublishDate)
	if err != nil {
		return err
	}
	p.PublishDate = t

	return nil
}

// PublishedDate returns the publish date in the format Jan 2, 2006
func (p Post) PublishedDate() string {
	if p.PublishDate.IsZero() {
		return ""
	}
	return p.PublishDate.Format("Jan 2, 2006")
}

func (id PostID) String() string {
	return string(id)
}
