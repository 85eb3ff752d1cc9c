package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List every folder across all accounts",
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient(cmd)

		folders, err := c.Folders(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Listing folders failed: %v\n", err)
			os.Exit(1)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			printJSON(folders)
			return
		}
		if len(folders) == 0 {
			fmt.Println("No folders found.")
			return
		}
		for _, f := range folders {
			fmt.Printf("%s (%s)\n", f.Name, f.Parent)
		}
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the configured Notes accounts",
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient(cmd)

		accounts, err := c.Accounts(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Listing accounts failed: %v\n", err)
			os.Exit(1)
		}
		for _, a := range accounts {
			fmt.Println(a)
		}
	},
}

func init() {
	rootCmd.AddCommand(foldersCmd)
	rootCmd.AddCommand(accountsCmd)
	foldersCmd.Flags().Bool("json", false, "Output results in JSON format")
}
