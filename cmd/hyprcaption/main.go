package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leonardotrapani/hyprcaption/internal/config"
	"github.com/leonardotrapani/hyprcaption/internal/language"
	"github.com/leonardotrapani/hyprcaption/internal/tui"
)

var (
	configPath   string
	hostOverride string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hyprcaption",
	Short: "Live captions and translations in your terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: user config dir/hyprcaption/config.toml)")
	rootCmd.PersistentFlags().StringVar(&hostOverride, "host", "", "caption server host:port, overrides stream.host")

	rootCmd.AddCommand(
		watchCmd(),
		tailCmd(),
		languagesCmd(),
		configureCmd(),
	)
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show live captions full screen (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context())
		},
	}
}

func tailCmd() *cobra.Command {
	var hide []string

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print finished captions to stdout as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return runTail(ctx, cfg, hide, os.Stdout)
		},
	}

	cmd.Flags().StringSliceVar(&hide, "hide", nil, "language codes to hide when first seen (e.g. --hide en,de)")

	return cmd
}

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages [code...]",
		Short: "List language codes with known labels, or show the label for given codes",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				printLabels(os.Stdout, args)
				return
			}
			for _, lang := range language.List() {
				fmt.Printf("  %-4s %-12s %s\n", lang.Code, lang.Name, lang.NativeName)
			}
			fmt.Println()
			fmt.Println("Other codes are shown in upper case.")
		},
	}
}

// printLabels shows the label each code gets in the view, plus the native
// name for codes in the table.
func printLabels(w io.Writer, codes []string) {
	for _, code := range codes {
		if lang, ok := language.Lookup(code); ok {
			fmt.Fprintf(w, "  %-8s %s (%s)\n", code, lang.Name, lang.NativeName)
			continue
		}
		fmt.Fprintf(w, "  %-8s %s\n", code, language.Label(code))
	}
}

func configureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactive configuration setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure()
		},
	}
}

func runConfigure() error {
	path, err := config.ResolvePath(configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result, err := tui.RunConfigure(cfg)
	if err != nil {
		return fmt.Errorf("configuration form error: %w", err)
	}
	if result.Cancelled {
		fmt.Println("Configuration cancelled.")
		return nil
	}

	if err := config.Save(path, result.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", path)
	fmt.Println("A running hyprcaption picks up display changes immediately; stream changes apply on restart.")
	return nil
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig() (*config.Config, error) {
	path, err := config.ResolvePath(configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return applyOverrides(cfg)
}

func applyOverrides(cfg *config.Config) (*config.Config, error) {
	if hostOverride != "" {
		cfg.Stream.Host = hostOverride
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
