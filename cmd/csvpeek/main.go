package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"csvpeek/internal/config"
	"csvpeek/internal/logger"
	"csvpeek/internal/reader"
	"csvpeek/internal/stats"
	"csvpeek/internal/ui"
)

var (
	sizeStr    string
	configFile string
	logFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "csvpeek FILE",
		Short: "Desktop viewer for delimited text files",
		Long:  "csvpeek opens a CSV-like file, sniffs its delimiter and streams the rows into a scrollable grid without freezing the interface.",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	rootCmd.Flags().StringVar(&sizeStr, "size", "", "window size as WIDTHxHEIGHT (default 1000x618)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "viewer config file (YAML)")
	rootCmd.Flags().StringVar(&logFile, "log", "", "session log file")

	sniffCmd := &cobra.Command{
		Use:   "sniff FILE",
		Short: "Report the inferred delimiter dialect",
		Args:  cobra.ExactArgs(1),
		RunE:  runSniff,
	}

	statsCmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print per-column numeric summaries",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	rootCmd.AddCommand(sniffCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configured YAML file or falls back to defaults.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

// checkFile rejects missing paths and directories up front so the user gets
// a usage error instead of a window that immediately fails.
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("file %s is a directory", path)
	}
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	filename := args[0]
	if err := checkFile(filename); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height, err := parseSize(sizeStr, cfg)
	if err != nil {
		return err
	}

	var log *logger.Logger
	if logFile != "" {
		log, err = logger.New(logFile)
		if err != nil {
			return err
		}
		defer log.Close()
	}

	return ui.New(cfg, log).Run(filename, width, height)
}

func runSniff(cmd *cobra.Command, args []string) error {
	filename := args[0]
	if err := checkFile(filename); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := reader.Open(filename, cfg)
	if err != nil {
		return err
	}
	defer source.Close()

	dl := source.Dialect()
	if dl.Fallback {
		fmt.Println("sniffing failed, falling back to comma")
	}
	fmt.Printf("delimiter: %q\ncolumns: %d\n", dl.Comma, source.FieldCount())
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	filename := args[0]
	if err := checkFile(filename); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := reader.Open(filename, cfg)
	if err != nil {
		return err
	}
	defer source.Close()

	columns := make([][]string, source.FieldCount())
	for {
		record, err := source.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		for i, value := range record {
			columns[i] = append(columns[i], value)
		}
	}

	for i, title := range source.Header() {
		fmt.Printf("%s: %s\n", title, stats.Summarize(columns[i]))
	}
	return nil
}

// parseSize parses a WIDTHxHEIGHT option, falling back to the configured
// window size when the flag keeps its default.
func parseSize(s string, cfg *config.Config) (int, int, error) {
	if s == "" {
		return cfg.Window.Width, cfg.Window.Height, nil
	}

	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("size %q must be positive", s)
	}
	return width, height, nil
}
