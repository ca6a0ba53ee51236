package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tui "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/keilerkonzept/worldcup-dashboard/internal/worldcup"
)

var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "worldcup",
		Short: "Interactive dashboard of FIFA World Cup winners",
		Long: `Browse the 22 FIFA World Cup finals from 1930 to 2022.

Pick a country to see how many titles it has won and to highlight it on the
map; pick a year to see that final's winner and runner-up.

Run without a subcommand to start the interactive dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfigFile(cmd.Flags()); err != nil {
				return err
			}
			if err := validateAndNormalizeConfig(); err != nil {
				return err
			}
			l, err := newLogger(config.LogFile, config.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runDashboard,
	}
	bindConfigFlags(root)

	var asJSON bool
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the dashboard outputs for the --country and --year selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd.OutOrStdout(), asJSON)
		},
	}
	snapshotCmd.Flags().BoolVar(&asJSON, "json", false, "Print the snapshot as JSON")

	var raw bool
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the titles leaderboard and every final as a markdown report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), raw)
		},
	}
	reportCmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without terminal rendering")
	reportCmd.Flags().StringVar(&config.ReportStyle, "style", config.ReportStyle, "Glamour style for the rendered report")
	reportCmd.Flags().IntVar(&config.ReportWrap, "wrap", config.ReportWrap, "Wrap the rendered report at this width (0 disables)")

	root.AddCommand(snapshotCmd, reportCmd)
	return root
}

func newLogger(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// newState builds the dataset and applies the configured initial selection.
func newState(opts ...worldcup.StateOption) (*worldcup.DashboardState, error) {
	ds := worldcup.WorldCup()
	wins := worldcup.NewWinTable(ds)
	state := worldcup.NewDashboardState(ds, wins, opts...)

	year, err := worldcup.ParseYear(config.Year)
	if err != nil {
		return nil, fmt.Errorf("initial year: %w", err)
	}
	state.SelectCountry(config.Country)
	state.SelectYear(year)

	logger.Info("Dataset loaded",
		zap.Int("finals", ds.Len()),
		zap.Int("winners", wins.Len()),
		zap.String("country", state.Country()),
		zap.String("year", worldcup.FormatYear(state.Year())))
	return state, nil
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		logger.Info("Stdout is not a terminal, printing snapshot")
		return runSnapshot(cmd.OutOrStdout(), false)
	}

	metrics := newDeriveMetrics(config.StatsWindow)
	metrics.setEnabled(config.StatsEnabled)
	state, err := newState(worldcup.WithObserver(metrics))
	if err != nil {
		return err
	}
	scale, err := newColorScale(config.ScaleLow, config.ScaleHigh)
	if err != nil {
		return err
	}

	m := newModel(state, scale, metrics, logger)
	opts := []tui.ProgramOption{tui.WithInputTTY()}
	if config.AltScreen {
		opts = append(opts, tui.WithAltScreen())
	}
	if _, err := tui.NewProgram(m, opts...).Run(); err != nil {
		logger.Error("Dashboard exited with error", zap.Error(err))
		return fmt.Errorf("run dashboard: %w", err)
	}
	logger.Info("Dashboard closed",
		zap.String("country", state.Country()),
		zap.String("year", worldcup.FormatYear(state.Year())))
	return nil
}

func runSnapshot(w io.Writer, asJSON bool) error {
	state, err := newState()
	if err != nil {
		return err
	}
	snap := state.Snapshot()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(w, formatSnapshot(snap))
	return err
}

func formatSnapshot(snap worldcup.Snapshot) string {
	out := fmt.Sprintf("%s\n\ncountry: %s\nyear: %s\n\n%s\n", dashboardTitle, snap.Country, snap.Year, mapTitle)
	for _, e := range snap.Map.Entries {
		out += fmt.Sprintf("  %-12s %s\n", e.Country, formatIntensity(e.Intensity))
	}
	out += fmt.Sprintf("  colour range: [%s, %s]\n\n", formatIntensity(snap.Map.Domain[0]), formatIntensity(snap.Map.Domain[1]))
	if snap.CountryText != "" {
		out += snap.CountryText + "\n"
	}
	out += snap.YearText + "\n"
	return out
}

func runReport(w io.Writer, raw bool) error {
	ds := worldcup.WorldCup()
	md := buildReport(ds, worldcup.NewWinTable(ds))
	if raw {
		_, err := io.WriteString(w, md)
		return err
	}
	out, err := renderReport(md, config.ReportStyle, config.ReportWrap)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
