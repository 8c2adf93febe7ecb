// Package mcp exposes the progression intents as MCP tools over stdio,
// so the host can drive the game from an MCP client.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"initiation/internal/game"
)

type Server struct {
	session *game.Session
	mcp     *sdk.Server
}

func NewServer(session *game.Session, version string) *Server {
	s := &Server{
		session: session,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "initiation",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
