package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/openclaw/clawctl/internal/logging"
	"github.com/openclaw/clawctl/internal/registry"
)

var rootCmd = &cobra.Command{
	Use:   "heartbeatctl",
	Short: "Inspect the heartbeat task registry",
	Long:  "heartbeatctl prints the periodic workspace chores and the cron schedules an external scheduler runs them on.",
	RunE:  runStatus,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print every registered heartbeat task",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Re-check the registry configuration",
	Long:  "Validates the registered schedules. The crontab itself is managed outside this tool; nothing is mutated here.",
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(statusCmd, updateCmd)
}

func main() {
	logging.ConfigureRuntime()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	printStatus(cmd.OutOrStdout(), registry.Default(), time.Now())
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if err := registry.Validate(registry.Default()); err != nil {
		return fmt.Errorf("heartbeat registry: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✅ heartbeat task configuration is up to date")
	return nil
}

// printStatus writes one line per task: description, key, schedule, and the
// next fire time when the schedule parses.
func printStatus(w io.Writer, reg registry.Registry, now time.Time) {
	fmt.Fprintln(w, "💓 heartbeat task status")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, task := range reg.Tasks() {
		line := fmt.Sprintf("✅ %s [%s]: %s", task.Description, task.Key, task.Schedule)
		if next, err := task.NextRun(now); err == nil {
			line += fmt.Sprintf(" (next %s)", next.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(w, line)
	}
}
