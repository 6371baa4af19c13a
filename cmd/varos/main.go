// Package main provides the VAROS CLI entry point.
// VAROS is a minimal interactive shell with a handful of built-in commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"varos/internal/commands/builtin"
	"varos/internal/config"
	"varos/internal/fsys"
	"varos/internal/logger"
	"varos/internal/output"
	"varos/internal/shell"
	"varos/internal/theme"
	"varos/internal/version"
)

// rootCmd starts the interactive shell
var rootCmd = &cobra.Command{
	Use:   "varos",
	Short: "VAROS - a minimal interactive shell",
	Long: `VAROS reads one line at a time and runs one of its built-in commands:
cd, ls, history, help and exit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFormattedVersion())
	},
}

func main() {
	os.Exit(execute())
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(versionCmd)
}

func execute() int {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runShell(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	cfg, err := config.Load(v, config.DefaultDotEnvPath())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	logger.Debug("Starting VAROS", "version", version.Version, "theme", cfg.Theme, "plain", cfg.Plain)

	printer, err := newPrinter(cfg)
	if err != nil {
		return err
	}

	startDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine start directory: %w", err)
	}

	registry, err := builtin.NewRegistry()
	if err != nil {
		return err
	}

	reader, err := newReader(printer)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}

	sh, err := shell.New(shell.Options{
		Username: currentUsername(),
		StartDir: startDir,
		Registry: registry,
		FS:       fsys.New(),
		Printer:  printer,
		Reader:   reader,
	})
	if err != nil {
		return err
	}

	sh.PrintBanner()
	if err := sh.Run(cmd.Context()); err != nil {
		logger.Error("Shell stopped", "error", err)
		return err
	}
	return nil
}

func newPrinter(cfg *config.Config) (*output.Printer, error) {
	th, err := theme.Load(cfg.Theme)
	if err != nil {
		return nil, err
	}
	if cfg.Plain || !output.SupportsColor() {
		return output.NewPrinter(output.PlainText()), nil
	}
	return output.NewPrinter(output.WithStyles(th)), nil
}

func newReader(printer *output.Printer) (shell.LineReader, error) {
	if shell.StdinIsTerminal() {
		return shell.NewReadlineReader(printer)
	}
	return shell.NewBufferedReader(os.Stdin, printer), nil
}

// currentUsername returns the login name shown in the prompt.
func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "user"
}
