package main

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/keilerkonzept/worldcup-dashboard/internal/worldcup"
)

type Config struct {
	// selection
	Country string `yaml:"country"`
	Year    string `yaml:"year"`

	// render
	ViewSplit     int    `yaml:"view_split"`
	LogScale      bool   `yaml:"log_scale"`
	ScaleLow      string `yaml:"scale_low"`
	ScaleHigh     string `yaml:"scale_high"`
	ReportStyle   string `yaml:"report_style"`
	ReportWrap    int    `yaml:"report_wrap"`
	StatsEnabled  bool   `yaml:"stats"`
	StatsWindow   int    `yaml:"stats_window"`
	AltScreen     bool   `yaml:"alt_screen"`
	PlotMinHeight int    `yaml:"plot_min_height"`

	// logging
	LogFile string `yaml:"log_file"`
	Verbose bool   `yaml:"verbose"`

	Path string `yaml:"-"`
}

func defaultConfig() Config {
	return Config{
		Country: worldcup.All,
		Year:    worldcup.All,

		ViewSplit:     35,
		LogScale:      false,
		ScaleLow:      "#f7fbff",
		ScaleHigh:     "#08306b",
		ReportStyle:   "dark",
		ReportWrap:    80,
		StatsEnabled:  false,
		StatsWindow:   256,
		AltScreen:     true,
		PlotMinHeight: 4,

		LogFile: "",
		Verbose: false,
	}
}

var config = defaultConfig()

var reportStyles = []string{"ascii", "auto", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}

func bindConfigFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.StringVar(&config.Path, "config", config.Path, "Read settings from this YAML file (flags take precedence)")
	pf.StringVar(&config.Country, "country", config.Country, "Initially selected country (All = every country)")
	pf.StringVar(&config.Year, "year", config.Year, "Initially selected year (All = no particular edition)")
	pf.StringVar(&config.LogFile, "log-file", config.LogFile, "Write JSON logs to this file (empty disables logging)")
	pf.BoolVarP(&config.Verbose, "verbose", "v", config.Verbose, "Log at debug level")

	f := root.Flags()
	f.IntVar(&config.ViewSplit, "view-split", config.ViewSplit, "Split the view at this % of the total screen width [20,80]")
	f.BoolVar(&config.LogScale, "log-scale", config.LogScale, "Use a logarithmic scale for the intensity plot")
	f.StringVar(&config.ScaleLow, "scale-low", config.ScaleLow, "Colour for intensity 0 (hex)")
	f.StringVar(&config.ScaleHigh, "scale-high", config.ScaleHigh, "Colour for the highest intensity (hex)")
	f.BoolVar(&config.StatsEnabled, "stats", config.StatsEnabled, "Show derivation latency stats")
	f.IntVar(&config.StatsWindow, "stats-window", config.StatsWindow, "Number of samples kept per latency stat")
	f.BoolVar(&config.AltScreen, "alt-screen", config.AltScreen, "Run the dashboard in the terminal's alternate screen")
}

// loadConfigFile applies the YAML file named by --config, then re-applies
// every flag that was set explicitly on the command line.
func loadConfigFile(flags *pflag.FlagSet) error {
	if config.Path == "" {
		return nil
	}
	explicit := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	data, err := os.ReadFile(config.Path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	path := config.Path
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	config.Path = path

	for name, value := range explicit {
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
	}
	return nil
}

func validateAndNormalizeConfig() error {
	config.Country = worldcup.ParseCountry(config.Country)
	if _, err := worldcup.ParseYear(config.Year); err != nil {
		return fmt.Errorf("--year: %w", err)
	}
	if config.ViewSplit < 20 || config.ViewSplit > 80 {
		return fmt.Errorf("--view-split must be in [20,80]")
	}
	if _, err := colorful.Hex(config.ScaleLow); err != nil {
		return fmt.Errorf("--scale-low: %w", err)
	}
	if _, err := colorful.Hex(config.ScaleHigh); err != nil {
		return fmt.Errorf("--scale-high: %w", err)
	}
	if !lo.Contains(reportStyles, config.ReportStyle) {
		return fmt.Errorf("report_style must be one of %v", reportStyles)
	}
	if config.ReportWrap < 0 {
		return fmt.Errorf("report_wrap must be >= 0")
	}
	if config.StatsWindow < 16 {
		config.StatsWindow = 16
	}
	if config.PlotMinHeight < 1 {
		config.PlotMinHeight = 1
	}
	return nil
}
