//go:build linux

// Package app wires the CLI. The bare command runs the full sweep with no
// flags and always exits 0; subcommands add surfaces without touching the
// scan's behavior.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/portlens/portlens/internal/output"
	"github.com/portlens/portlens/internal/pipeline"
	"github.com/portlens/portlens/internal/probe"
	"github.com/portlens/portlens/internal/proc"
	"github.com/portlens/portlens/internal/services"
	"github.com/portlens/portlens/internal/tui"
)

const scanHost = "127.0.0.1"

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	buildDate = d
}

func versionString() string {
	s := version
	if commit != "" {
		s += " (" + commit
		if buildDate != "" {
			s += ", " + buildDate
		}
		s += ")"
	}
	return s
}

var rootCmd = &cobra.Command{
	Use:   "portlens",
	Short: "Inspect local TCP ports, their states, and owning processes",
	Long: `portlens sweeps every TCP port on the local host, classifies each open
port as LISTENING, ESTABLISHED, or OPEN via connect-based probing, and
correlates it with the owning process through /proc.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runSweep()
	},
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Interactive view of currently open ports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Start(versionString())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("portlens " + versionString())
	},
}

func init() {
	rootCmd.AddCommand(liveCmd, versionCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
}

// runSweep composes the sweep. Self identity is captured here, before any
// probing, and handed to the correlator as immutable state.
func runSweep() {
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	table := output.NewTable(os.Stdout, color)

	table.Banner(scanHost, pipeline.MinPort, pipeline.MaxPort)
	table.Header()

	pipeline.Sweep(pipeline.SweepConfig{
		First:      pipeline.MinPort,
		Last:       pipeline.MaxPort,
		Prober:     probe.New(scanHost),
		Correlator: proc.NewCorrelator(os.Getpid()),
		Services:   services.NewResolver(),
		Reporter:   table,
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
