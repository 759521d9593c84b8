package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openclaw/clawctl/internal/logging"
	"github.com/openclaw/clawctl/internal/port"
	"github.com/openclaw/clawctl/internal/workspace"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "portctl",
	Short: "Check local workspace service ports",
	Long:  "portctl probes the local ports the workspace tools are assigned to, so a new service can pick a port without colliding with a running one.",
	RunE:  runCheck,

	SilenceUsage: true,
}

var checkCmd = &cobra.Command{
	Use:   "check [port]",
	Short: "Probe one port (default: the service panel port)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

var freeCmd = &cobra.Command{
	Use:   "free",
	Short: "Find the first free port in the reserved range",
	Args:  cobra.NoArgs,
	RunE:  runFree,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the default service port table with live status",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "workspace config TOML path")
	rootCmd.AddCommand(checkCmd, freeCmd, listCmd)
}

func main() {
	logging.ConfigureRuntime()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := workspace.Resolve(configPath)
	if err != nil {
		return err
	}
	p := cfg.PanelPort
	if len(args) == 1 {
		p, err = parsePort(args[0])
		if err != nil {
			return err
		}
	}
	printCheck(cmd.OutOrStdout(), p, port.InUse(p))
	return nil
}

func runFree(cmd *cobra.Command, args []string) error {
	cfg, err := workspace.Resolve(configPath)
	if err != nil {
		return err
	}
	p, ok := port.FirstFree(cfg.ReservedPortMin, cfg.ReservedPortMax)
	if !ok {
		return fmt.Errorf("no free port in reserved range %d-%d", cfg.ReservedPortMin, cfg.ReservedPortMax)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ free port: %d\n", p)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	printList(cmd.OutOrStdout(), port.DefaultServices(), port.InUse)
	return nil
}

func printCheck(w io.Writer, p int, inUse bool) {
	if inUse {
		fmt.Fprintf(w, "⚠️ port %d is already in use\n", p)
		return
	}
	fmt.Fprintf(w, "✅ service panel: %s\n", port.URL(p))
}

func printList(w io.Writer, services []port.Service, probe func(int) bool) {
	for _, s := range services {
		marker := "○"
		if probe(s.Port) {
			marker = "●"
		}
		fmt.Fprintf(w, "%s %-20s %d\n", marker, s.Name, s.Port)
	}
}

func parsePort(raw string) (int, error) {
	p, err := strconv.Atoi(raw)
	if err != nil || p < 1 || p > 65535 {
		return 0, fmt.Errorf("invalid port %q", raw)
	}
	return p, nil
}
