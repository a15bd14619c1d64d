package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-posts/internal/metrics"
)

func New(logger *slog.Logger, viewer Viewer, m *metrics.Metrics) *zenrpc.Server {
	rpcService := NewPostsService(viewer, m)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("posts", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blog-posts", nil))

	return rpcServer
}
