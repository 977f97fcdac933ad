package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"adstudio/cmd/adstudio/ui"
	"adstudio/internal/catalog"
	"adstudio/internal/config"
	"adstudio/internal/export"
	"adstudio/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is stamped at build time.
var Version = "dev"

var (
	// Global flags
	verbose bool
	cfgPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd launches the interactive dashboard.
var rootCmd = &cobra.Command{
	Use:   "adstudio",
	Short: "adstudio - ad content studio dashboard",
	Long: `adstudio is a terminal dashboard over a generated ad-content catalogue:
platform ad copy variations, UGC video scripts, a review status board,
and a guided store setup flow.

Run without arguments to open the dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("starting dashboard", zap.String("version", Version))
		return ui.Run(cfg, catalog.NewSampleData(), logger)
	},
}

// exportCmd writes the catalogue to files without opening the UI.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the content catalogue to CSV or JSON files",
	Long: `Writes the catalogue into the configured export directory:
CSV produces one ads file per platform plus a UGC scripts file,
JSON produces a single combined document.`,
	RunE: runExport,
}

var exportFormat string

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the adstudio version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("adstudio %s\n", Version)
	},
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data := catalog.NewSampleData()
	ex := export.New(cfg.ExportDir, logger)

	switch exportFormat {
	case "csv":
		paths, err := ex.CSV(ctx, data)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		for _, p := range paths {
			fmt.Println(p)
		}
	case "json":
		path, err := ex.JSON(ctx, data)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Println(path)
	default:
		return fmt.Errorf("unknown format %q (use csv or json)", exportFormat)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "adstudio.yaml", "path to config file")

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "export format: csv or json")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
