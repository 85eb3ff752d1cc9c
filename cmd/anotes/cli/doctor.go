package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that Notes automation works from this machine",
	Long: `Verify the pieces anotes depends on: the osascript interpreter, the
Notes application, and the automation permission that macOS gates script
access behind.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient(cmd)
		ctx := context.Background()

		fmt.Println("Running environment checks...")

		hasIssues := false

		fmt.Println("\n--- Platform ---")
		if runtime.GOOS == "darwin" {
			fmt.Println("Running on macOS")
		} else {
			fmt.Printf("Running on %s; Apple Notes automation needs macOS\n", runtime.GOOS)
			hasIssues = true
		}

		fmt.Println("\n--- osascript ---")
		if path, err := exec.LookPath("osascript"); err == nil {
			fmt.Printf("Found %s\n", path)
		} else {
			fmt.Println("osascript not found in PATH")
			hasIssues = true
		}

		fmt.Println("\n--- Notes.app ---")
		if pid, running := notesProcess(); running {
			fmt.Printf("Notes is running (pid %d)\n", pid)
		} else {
			fmt.Println("Notes is not running; the first automation call will launch it")
		}

		fmt.Println("\n--- Automation ---")
		if n, err := c.NoteCount(ctx); err == nil {
			fmt.Printf("Notes store reachable, %d notes\n", n)
		} else {
			hasIssues = true
			if isAutomationDenied(err) {
				fmt.Println("Automation permission denied (error -1743).")
				fmt.Println("Allow this terminal under System Settings > Privacy & Security > Automation.")
			} else {
				fmt.Printf("Probe failed: %v\n", err)
			}
		}

		failOnIssues, _ := cmd.Flags().GetBool("fail")
		if failOnIssues && hasIssues {
			fmt.Println("\nDoctor found issues. Exiting with failure code.")
			os.Exit(1)
		} else if hasIssues {
			fmt.Println("\nDoctor found issues. Use --fail to exit with an error code.")
		} else {
			fmt.Println("\nNotes automation looks healthy! ✨")
		}
	},
}

// notesProcess scans the process table for the Notes application.
func notesProcess() (int32, bool) {
	procs, err := process.Processes()
	if err != nil {
		return 0, false
	}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		if name == "Notes" {
			return p.Pid, true
		}
	}
	return 0, false
}

// isAutomationDenied spots the macOS apple-events permission error.
func isAutomationDenied(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "-1743") || strings.Contains(msg, "Not authorized")
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().Bool("fail", false, "Exit with non-zero status if issues are found")
}
