package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/LittlestCube/romkit/format"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	typesPath string
)

// envDefaults carries environment configuration under the ROMCTL prefix,
// applied when the corresponding flag is not set.
type envDefaults struct {
	Types    string `envconfig:"TYPES"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
}

var rootCmd = &cobra.Command{
	Use:   "romctl",
	Short: "Inspect and manipulate game cartridge ROM images",
	Long: `romctl is a tool for inspecting and manipulating game cartridge ROM
images. It detects the rom type from the image's signature bytes, reports the
ranges left free for new content, and performs the growth transforms the rom
type supports.`,
	Version:           "0.1.0",
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&typesPath, "types", "", "Path to a rom type table (YAML), overriding the built-in one")
}

func setup(cmd *cobra.Command, args []string) error {
	var env envDefaults
	if err := envconfig.Process("ROMCTL", &env); err != nil {
		return err
	}
	if typesPath == "" {
		typesPath = env.Types
	}

	level := parseLevel(env.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// loadTable returns the rom type table the global flags select.
func loadTable() (*format.Table, error) {
	if typesPath == "" {
		return format.DefaultTable(), nil
	}
	return format.LoadTable(typesPath)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	execute()
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a message only in verbose mode
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON marshals v with indentation and writes it to stdout
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
