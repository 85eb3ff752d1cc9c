package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	mcpserver "github.com/zach-snell/apple-notes-mcp/internal/server"
)

func main() {
	// Pick up ANOTES_* vars from a .env next to the working directory, if any.
	_ = godotenv.Load()

	s := mcpserver.New(mcpserver.Options{
		Account:       os.Getenv("ANOTES_ACCOUNT"),
		DefaultFolder: os.Getenv("ANOTES_FOLDER"),
		ReadOnly:      envBool("ANOTES_READ_ONLY"),
	})

	// Determine transport: HTTP streamable or stdio
	addr := httpAddr()

	if addr != "" {
		serveHTTP(s, addr)
	} else {
		serveStdio(s)
	}
}

// httpAddr returns the HTTP listen address from the --http flag or the
// ANOTES_ADDR env var. Returns "" if stdio transport should be used.
func httpAddr() string {
	// Check --http flag
	for i, arg := range os.Args {
		if arg == "--http" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
	}

	// Check env var
	return os.Getenv("ANOTES_ADDR")
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func serveStdio(s *mcp.Server) {
	fmt.Fprintf(os.Stderr, "Starting Apple Notes MCP Server (stdio)...\n")

	if err := s.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func serveHTTP(s *mcp.Server, addr string) {
	fmt.Fprintf(os.Stderr, "Starting Apple Notes MCP Server (HTTP Streamable)...\n")
	fmt.Fprintf(os.Stderr, "Listening on %s\n", addr)

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return s
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
