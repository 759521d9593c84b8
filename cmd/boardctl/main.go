package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openclaw/clawctl/internal/board"
	"github.com/openclaw/clawctl/internal/logging"
	"github.com/openclaw/clawctl/internal/workspace"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "boardctl",
	Short: "Synchronize the staged task board",
	Long:  "boardctl copies the staged task document onto the persistent board file, overwriting whatever was there. Concurrent writers are last-write-wins.",
	RunE:  runSync,

	SilenceErrors: true,
	SilenceUsage:  true,
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy the staging file onto the board",
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "workspace config TOML path")
	rootCmd.AddCommand(syncCmd)
}

func main() {
	logger := logging.Init("boardctl")
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("board sync failed")
		os.Exit(1)
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := workspace.Resolve(configPath)
	if err != nil {
		return err
	}
	count, err := board.Sync(cfg.StagingFile, cfg.BoardFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ saved %d tasks to the board (%s)\n", count, cfg.BoardFile)
	return nil
}
