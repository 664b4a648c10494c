package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"placemap-api/internal/config"
	"placemap-api/internal/logging"
	"placemap-api/internal/markers"
	"placemap-api/internal/registry"
	"placemap-api/internal/repository"
	"placemap-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	source     string
	locale     string
	timeout    time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect a placemap dataset",
	Long:  `Load a placemap dataset the way the API does and report what the map would show.`,

	SilenceUsage:      true,
	PersistentPreRunE: applyConfig,
}

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Print the categories in display order",
	RunE:  runLegend,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print marker counts per category and every skipped place",
	RunE:  runReport,
}

var filterCmd = &cobra.Command{
	Use:   "filter <category>",
	Short: "Print the places visible under a filter",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilter,
}

func init() {
	defaults := config.Defaults()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./configs", "Directory holding placemap.json")
	rootCmd.PersistentFlags().StringVarP(&source, "file", "f", defaults.DatasetSource, "Dataset file path or URL")
	rootCmd.PersistentFlags().StringVarP(&locale, "locale", "l", defaults.CollationLocale, "Collation locale for category names")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", defaults.FetchTimeout, "Fetch timeout for remote datasets")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped places while loading")

	rootCmd.AddCommand(legendCmd, reportCmd, filterCmd)
}

// applyConfig fills every flag left unset on the command line from the config file.
func applyConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("file") {
		source = cfg.DatasetSource
	}
	if !flags.Changed("locale") {
		locale = cfg.CollationLocale
	}
	if !flags.Changed("timeout") {
		timeout = cfg.FetchTimeout
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSession(cmd *cobra.Command) (*service.MapSession, markers.Report, error) {
	logger := zerolog.Nop()
	if verbose {
		logger = logging.Setup("debug", true)
	}

	repo := repository.NewDatasetRepository(source, timeout)
	session := service.NewMapSession(repo, registry.NewSorter(locale), config.MapConfig{}, logger)

	report, err := session.Init(cmd.Context())
	if err != nil {
		return nil, report, fmt.Errorf("load %s: %w", source, err)
	}
	return session, report, nil
}

func runLegend(cmd *cobra.Command, args []string) error {
	session, _, err := loadSession(cmd)
	if err != nil {
		return err
	}

	legend, err := session.Legend()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tICON\tNAME\tCOLOR")
	for _, cat := range legend {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.ID, cat.Icon, cat.Name, cat.Color)
	}
	return w.Flush()
}

func runReport(cmd *cobra.Command, args []string) error {
	session, report, err := loadSession(cmd)
	if err != nil {
		return err
	}

	categories, err := session.Categories()
	if err != nil {
		return err
	}
	visible, err := session.VisibleMarkers()
	if err != nil {
		return err
	}

	counts := make(map[string]int, len(categories))
	for _, e := range visible {
		counts[e.Category]++
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Markers: %d, skipped: %d\n\n", len(report.Added), len(report.Skipped))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tMARKERS")
	for _, id := range categories {
		fmt.Fprintf(w, "%s\t%d\n", id, counts[id])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(report.Skipped) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tPLACE\tCATEGORY\tREASON")
	for _, skip := range report.Skipped {
		fmt.Fprintf(w, "%d\t%s\t%s\t%v\n", skip.Index, skip.Place, skip.Category, skip.Reason)
	}
	return w.Flush()
}

func runFilter(cmd *cobra.Command, args []string) error {
	session, _, err := loadSession(cmd)
	if err != nil {
		return err
	}

	visible, err := session.ApplyFilter(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range visible {
		fmt.Fprintf(out, "%s\t%s\t%.5f,%.5f\n", e.Place.Name, e.Category, e.Place.Latitude, e.Place.Longitude)
	}
	fmt.Fprintf(out, "%d visible\n", len(visible))
	return nil
}
