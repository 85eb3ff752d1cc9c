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

var readCmd = &cobra.Command{
	Use:   "read [title]",
	Short: "Print a note's body by its exact title",
	Long: `Read one note by title. When the title exists in more than one
folder and --folder is not given, the first match wins.

Examples:
  anotes read "Grocery List"
  anotes read "Grocery List" --folder Shopping --json`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient(cmd)
		ctx := context.Background()

		title := strings.Join(args, " ")
		folder, _ := cmd.Flags().GetString("folder")
		asJSON, _ := cmd.Flags().GetBool("json")

		res, note, err := c.ReadNoteHandler(ctx, nil, notes.ReadNoteArgs{
			Title:  title,
			Folder: folder,
		})
		if err != nil {
			if notes.IsNotFound(err) {
				fmt.Fprintf(os.Stderr, "No note titled %q\n", title)
			} else {
				fmt.Fprintf(os.Stderr, "Read failed: %v\n", err)
			}
			os.Exit(1)
		}

		if asJSON {
			printJSON(note)
			return
		}
		fmt.Println(res.Content[0].(*mcp.TextContent).Text)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().String("folder", "", "Folder holding the note")
	readCmd.Flags().Bool("json", false, "Output the full note as JSON")
}
