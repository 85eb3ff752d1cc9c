package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/zach-snell/apple-notes-mcp/internal/notes"
)

var listCmd = &cobra.Command{
	Use:   "list [folder]",
	Short: "List notes, all of them or one folder",
	Long: `List notes with their folder and timestamps.

Examples:
  anotes list
  anotes list Shopping
  anotes list --json | jq '.notes[].title'`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient(cmd)
		ctx := context.Background()

		folder := ""
		if len(args) > 0 {
			folder = args[0]
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		res, out, err := c.ListNotesHandler(ctx, nil, notes.ListNotesArgs{Folder: folder})
		if err != nil {
			fmt.Fprintf(os.Stderr, "List failed: %v\n", err)
			os.Exit(1)
		}

		if asJSON {
			printJSON(out)
			return
		}
		fmt.Println(res.Content[0].(*mcp.TextContent).Text)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Output results in JSON format")
}
