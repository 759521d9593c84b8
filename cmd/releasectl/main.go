package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openclaw/clawctl/internal/logging"
	"github.com/openclaw/clawctl/internal/release"
	"github.com/openclaw/clawctl/internal/workspace"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "releasectl",
	Short: "Report the workspace release status",
	Long:  "releasectl reads the workspace VERSION file and reports the current release status. Publishing itself happens outside this tool.",
	RunE:  runStatus,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current version",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Stage a release (not implemented)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "🧰 prepare: release staging is handled outside this tool; nothing to do")
		return nil
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Publish a release (not implemented)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "🧰 release: publishing is handled outside this tool; nothing to do")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "workspace config TOML path")
	rootCmd.AddCommand(statusCmd, prepareCmd, releaseCmd)
}

func main() {
	logging.ConfigureRuntime()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := workspace.Resolve(configPath)
	if err != nil {
		return err
	}
	v, err := release.Read(cfg.VersionFile)
	if err != nil {
		return err
	}
	printStatus(cmd.OutOrStdout(), v)
	return nil
}

func printStatus(w io.Writer, v release.Version) {
	fmt.Fprintf(w, "🚀 current version: %s\n", v.Display())
	if !v.Recorded {
		fmt.Fprintln(w, "   (no version recorded yet)")
	}
	fmt.Fprintln(w, "use `releasectl prepare` to stage a release, `releasectl release` to publish")
}
