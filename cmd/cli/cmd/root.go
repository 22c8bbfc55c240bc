package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arnlink/arnlink"
	"github.com/arnlink/arnlink/internal/config"
	"github.com/arnlink/arnlink/internal/constants"
	"github.com/arnlink/arnlink/internal/logger"
	"github.com/arnlink/arnlink/internal/output"
)

var (
	debug   bool
	verbose bool

	// cfg is loaded once in the persistent pre-run and shared by subcommands.
	cfg = &config.Config{Output: config.OutputText}
)

var rootCmd = &cobra.Command{
	Use:   constants.ProjectName + " [arn ...]",
	Short: "Resolve AWS ARNs to console deep links",
	Long: fmt.Sprintf(`%s - %s
Paste one or more ARNs as arguments, or pipe them in one per line, and get
direct links into the AWS web console. A failing input never aborts the
rest; its error is printed and processing continues.`,
		constants.ProjectName, *constants.GetVersion()),
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}
		cfg = loaded

		logLevel := cfg.GetLogLevel()
		if debug {
			logLevel = slog.LevelDebug
		}
		logger.Initialize(logLevel, cfg.LogJSON)

		if verbose {
			output.Infof("CLI build: %s", output.Bold(*constants.GetVersion()))
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if verbose {
				output.Infof("reading ARNs from stdin")
			}
			return resolveFrom(cmd.InOrStdin())
		}
		resolveAll(args)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debugging logs")
}

// resolveAll resolves each input independently: the link goes to stdout,
// a failure goes to stderr, and processing always continues.
func resolveAll(inputs []string) {
	for _, input := range inputs {
		link, err := arnlink.LinkFor(input)
		if err != nil {
			output.Errorf("%s: %v", input, err)
			continue
		}
		output.Println(link)
	}
}

// resolveFrom reads ARNs line by line (filter mode). Blank lines are skipped.
func resolveFrom(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	resolveAll(lines)
	return nil
}
