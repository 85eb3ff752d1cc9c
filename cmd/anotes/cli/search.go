package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/zach-snell/apple-notes-mcp/internal/notes"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search note titles and bodies for a given query",
	Long: `Search Apple Notes for text matching the given query, case
insensitively.

By default, prints the results in a human-readable list.
If the --json flag is provided, it returns structured JSON
perfect for piping to jq or other tools.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient(cmd)
		ctx := context.Background()

		query := strings.Join(args, " ")
		folder, _ := cmd.Flags().GetString("folder")
		asJSON, _ := cmd.Flags().GetBool("json")

		res, out, err := c.SearchNotesHandler(ctx, nil, notes.SearchNotesArgs{
			Query:  query,
			Folder: folder,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
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
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("folder", "", "Limit the search to one folder")
	searchCmd.Flags().Bool("json", false, "Output results in JSON format")
}
