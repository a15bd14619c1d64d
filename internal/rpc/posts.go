package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-posts/internal/metrics"
	"github.com/daniilsolovey/blog-posts/internal/postlist"
)

//go:generate zenrpc

// Viewer derives listing pages from the mounted view state.
type Viewer interface {
	View(category *string, page *int) (postlist.PageView, error)
}

var (
	errLoading         = zenrpc.NewStringError(503, "posts are loading")
	errLoadFailed      = zenrpc.NewStringError(502, postlist.ErrorMessage)
	errUnknownCategory = zenrpc.NewStringError(400, "unknown category")
)

// PostsService provides RPC methods for the posts listing.
type PostsService struct {
	zenrpc.Service
	viewer  Viewer
	metrics *metrics.Metrics
}

func NewPostsService(viewer Viewer, m *metrics.Metrics) *PostsService {
	return &PostsService{viewer: viewer, metrics: m}
}

// Categories returns the category filter options: "All" first, then every
// category of the loaded posts in order of first appearance.
//
//zenrpc:return list of category names
//zenrpc:502 posts could not be loaded
//zenrpc:503 posts are loading
func (s *PostsService) Categories(ctx context.Context) ([]string, error) {
	view, err := s.view(nil, nil)
	if err != nil {
		return nil, err
	}

	return view.Categories, nil
}

// Page returns one page of the posts in category.
//
//zenrpc:category="All" category name
//zenrpc:page=1 page number (1-based), clamped to the available pages
//zenrpc:return listing page
//zenrpc:400 unknown category
//zenrpc:502 posts could not be loaded
//zenrpc:503 posts are loading
func (s *PostsService) Page(ctx context.Context, category *string, page *int) (*PageView, error) {
	view, err := s.view(category, page)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveView(metrics.SurfaceRPC)

	result := NewPageView(view)
	return &result, nil
}

func (s *PostsService) view(category *string, page *int) (postlist.PageView, error) {
	view, err := s.viewer.View(category, page)
	if errors.Is(err, postlist.ErrUnknownCategory) {
		return postlist.PageView{}, errUnknownCategory
	} else if err != nil {
		return postlist.PageView{}, err
	}

	switch view.Status {
	case postlist.StatusLoading:
		return postlist.PageView{}, errLoading
	case postlist.StatusError:
		return postlist.PageView{}, errLoadFailed
	}

	return view, nil
}
