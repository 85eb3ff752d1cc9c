package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show or change saved defaults",
	Long: `Manage the saved defaults: the account writes go to, the folder
created notes land in, and the folder for 'anotes jot'.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		fmt.Printf("account:    %s\n", orUnset(cfg.Account))
		fmt.Printf("folder:     %s\n", orUnset(cfg.Folder))
		fmt.Printf("jot-folder: %s\n", orUnset(cfg.JotFolder))
	},
}

var defaultsAccountCmd = &cobra.Command{
	Use:   "account [name]",
	Short: "Show or set the account writes go to",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if len(args) == 0 {
			fmt.Printf("account: %s\n", orUnset(cfg.Account))
			return
		}
		name := args[0]

		// Warn on unknown accounts but save anyway, the host may just be
		// unreachable right now.
		if accounts, err := newClient(cmd).Accounts(context.Background()); err == nil &&
			len(accounts) > 0 && !slices.Contains(accounts, name) {
			fmt.Printf("Warning: %q is not a known account (known: %s)\n", name, strings.Join(accounts, ", "))
		}

		cfg.Account = name
		if err := cfg.Save(); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}
		fmt.Printf("Set account to %q\n", name)
	},
}

var defaultsFolderCmd = &cobra.Command{
	Use:   "folder [name]",
	Short: "Show or set the folder created notes land in",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if len(args) == 0 {
			fmt.Printf("folder: %s\n", orUnset(cfg.Folder))
			return
		}
		name := args[0]
		warnUnknownFolder(cmd, name)

		cfg.Folder = name
		if err := cfg.Save(); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}
		fmt.Printf("Set folder to %q\n", name)
	},
}

var defaultsJotFolderCmd = &cobra.Command{
	Use:   "jot-folder [name]",
	Short: "Show or set the folder for dated jot notes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if len(args) == 0 {
			fmt.Printf("jot-folder: %s\n", orUnset(cfg.JotFolder))
			return
		}
		name := args[0]
		warnUnknownFolder(cmd, name)

		cfg.JotFolder = name
		if err := cfg.Save(); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}
		fmt.Printf("Set jot-folder to %q\n", name)
	},
}

func warnUnknownFolder(cmd *cobra.Command, name string) {
	folders, err := newClient(cmd).Folders(context.Background())
	if err != nil || len(folders) == 0 {
		return
	}
	for _, f := range folders {
		if f.Name == name {
			return
		}
	}
	fmt.Printf("Warning: %q is not a known folder. Try 'anotes folders'.\n", name)
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func init() {
	defaultsCmd.AddCommand(defaultsAccountCmd)
	defaultsCmd.AddCommand(defaultsFolderCmd)
	defaultsCmd.AddCommand(defaultsJotFolderCmd)
	rootCmd.AddCommand(defaultsCmd)
}
