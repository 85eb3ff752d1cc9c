package cli

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/zach-snell/apple-notes-mcp/internal/logging"
	mcpserver "github.com/zach-snell/apple-notes-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "mcp",
	Aliases: []string{"serve"},
	Short:   "Start the MCP server",
	Long: `Start the Apple Notes MCP server so AI assistants can list, search,
read, create, and edit notes. Uses stdio transport by default, or HTTP
streamable if --http is provided (or ANOTES_ADDR is set).`,
	Run: func(cmd *cobra.Command, args []string) {
		loadDotenv()

		cfg := loadConfig()
		account, _ := cmd.Flags().GetString("account")
		if account == "" {
			account = os.Getenv("ANOTES_ACCOUNT")
		}
		if account == "" {
			account = cfg.Account
		}
		folder, _ := cmd.Flags().GetString("folder")
		if folder == "" {
			folder = os.Getenv("ANOTES_FOLDER")
		}
		if folder == "" {
			folder = cfg.Folder
		}
		readOnly, _ := cmd.Flags().GetBool("read-only")

		s := mcpserver.New(mcpserver.Options{
			Account:       account,
			DefaultFolder: folder,
			ReadOnly:      readOnly,
		})

		addr, _ := cmd.Flags().GetString("http")
		if addr == "" {
			addr = os.Getenv("ANOTES_ADDR")
		}

		log := logging.New("serve")
		if addr != "" {
			serveHTTP(s, addr)
		} else {
			log.Info().Str("account", account).Bool("read_only", readOnly).Msg("starting Apple Notes MCP server (stdio)")
			if err := s.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
				log.Fatal().Err(err).Msg("server error")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("http", "", "HTTP listen address (e.g., :8080)")
	serveCmd.Flags().String("folder", "", "Default folder for created notes")
	serveCmd.Flags().Bool("read-only", false, "Serve only the list, search, and read tools")
}

// loadDotenv reads .env from the working directory and from alongside the
// executable, without overriding variables already set.
func loadDotenv() {
	_ = godotenv.Load()
	if exe, err := os.Executable(); err == nil {
		_ = godotenv.Load(filepath.Join(filepath.Dir(exe), ".env"))
	}
}

func serveHTTP(s *mcp.Server, addr string) {
	log := logging.New("serve")
	log.Info().Str("addr", addr).Msg("starting Apple Notes MCP server (HTTP streamable)")

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
		log.Fatal().Err(err).Msg("HTTP server error")
	}
}
