package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-poise/coach/config"
	"github.com/RyanBlaney/sonido-poise/logging"
)

var (
	// Global flags
	cfgFile    string
	logLevel   string
	outputFile string
	outputJSON bool
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "poise",
	Short: "Vocal confidence scoring for interview practice",
	Long: `poise scores a recorded interview answer for vocal confidence,
nervousness and fluency from the audio and its transcript.

Pitch steadiness, loudness consistency, voice breaks and speaking rate are
measured from the waveform; filler words, stammers and pauses from the
transcript.

Examples:
  # Score an answer with the default (strict) calibration
  poise analyze answer.wav -t "I led the migration and we shipped on time"

  # Read the transcript from a file and use lenient scoring
  poise analyze answer.webm --transcript-file answer.txt --calibration lenient

  # Override analysis parameters
  poise --config poise.yaml analyze answer.wav -t "..."
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logging.SetLevel(level)
		if noColor {
			logging.DisableColors()
		}
		return nil
	},
}

// Command returns the root cobra command for mounting into a parent CLI.
func Command() *cobra.Command {
	return rootCmd
}

// Execute runs the CLI, cancelling in-flight work on SIGINT or SIGTERM
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "analysis config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored log output")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON instead of YAML")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig returns the --config file merged over the defaults
func loadConfig() (*config.AnalysisConfig, error) {
	if cfgFile == "" {
		return config.DefaultAnalysisConfig(), nil
	}
	return config.Load(cfgFile)
}
