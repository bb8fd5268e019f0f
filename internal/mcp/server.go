package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	analyticsin "tvp/internal/modules/analytics/port/in"
	dailyin "tvp/internal/modules/daily/port/in"
	kanbanin "tvp/internal/modules/kanban/port/in"
	parserin "tvp/internal/modules/parser/port/in"
)

const serverVersion = "1.0.0"

// Server exposes the activity engine over the Model Context Protocol
// so assistants can log and query activity from a stdio transport.
type Server struct {
	mcp *server.MCPServer
}

func NewServer(parser parserin.Usecase, analytics analyticsin.Usecase, kanban kanbanin.Usecase, daily dailyin.Usecase) *Server {
	s := server.NewMCPServer("tvp", serverVersion, server.WithToolCapabilities(false))
	registerTools(s, parser, analytics, kanban, daily)
	return &Server{mcp: s}
}

// ServeStdio blocks until the client closes the stdio transport.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
