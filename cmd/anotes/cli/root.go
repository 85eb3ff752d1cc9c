package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zach-snell/apple-notes-mcp/internal/config"
	"github.com/zach-snell/apple-notes-mcp/internal/notes"
)

var rootCmd = &cobra.Command{
	Use:   "anotes",
	Short: "anotes is a CLI tool and MCP server for Apple Notes",
	Long: `anotes lets you work with Apple Notes from the command line
or run it as a Model Context Protocol (MCP) server for AI assistants.

Writes go to the account configured with 'anotes defaults account' (or the
ANOTES_ACCOUNT environment variable); reads always span every account.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("account", "", "Notes account for writes (default from config, then the host)")
}

// loadConfig returns the saved configuration, or an empty one when none
// exists or it cannot be read.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return &config.Config{}
	}
	return cfg
}

// newClient builds a notes client from flags, environment, and saved
// configuration, in that order of precedence.
func newClient(cmd *cobra.Command) *notes.Client {
	cfg := loadConfig()

	account, _ := cmd.Flags().GetString("account")
	if account == "" {
		account = os.Getenv("ANOTES_ACCOUNT")
	}
	if account == "" {
		account = cfg.Account
	}

	folder := os.Getenv("ANOTES_FOLDER")
	if folder == "" {
		folder = cfg.Folder
	}

	return notes.New(notes.Options{Account: account, DefaultFolder: folder})
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
