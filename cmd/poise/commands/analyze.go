package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-poise/coach"
	"github.com/RyanBlaney/sonido-poise/coach/config"
	"github.com/RyanBlaney/sonido-poise/logging"
	"github.com/RyanBlaney/sonido-poise/transcode"
)

var (
	transcript     string
	transcriptFile string
	calibration    string
	ffmpegPath     string
	normalize      bool
	removeDC       bool
	summaryOnly    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <audio-file>",
	Short: "Score an audio file against its transcript",
	Long: `Decode an answer recording, run the acoustic and transcript
analyzers, and print the confidence, nervousness and fluency scores with
the underlying profiles.

WAV files are decoded natively. Other containers (webm, ogg, mp3, m4a)
need ffmpeg on the PATH or at --ffmpeg.

Calibration:
  strict   raw scores
  lenient  confidence x1.15, nervousness x0.75

Examples:
  poise analyze answer.wav -t "um so I think it went well"
  poise analyze answer.webm --transcript-file answer.txt --summary --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if calibration != "" {
			policy, err := config.CalibrationByName(calibration)
			if err != nil {
				return err
			}
			cfg.Calibration = policy
		}

		text, err := readTranscript()
		if err != nil {
			return err
		}

		decoderCfg := transcode.DefaultDecoderConfig()
		decoderCfg.TargetSampleRate = cfg.SampleRate
		decoderCfg.EnableNormalization = normalize
		decoderCfg.RemoveDC = removeDC
		if ffmpegPath != "" {
			decoderCfg.FFmpegPath = ffmpegPath
		}

		ctx := logging.ContextWithFields(cmd.Context(), logging.Fields{
			"audio_file": args[0],
		})

		decoder := transcode.NewDecoder(decoderCfg)
		if err := decoder.ValidateConfig(); err != nil {
			return fmt.Errorf("invalid decoder config: %w", err)
		}

		audio, err := decoder.DecodeFile(ctx, args[0])
		if err != nil {
			return err
		}

		report, err := coach.NewAnalyzer(cfg).AnalyzeAudio(ctx, audio, text)
		if err != nil {
			return err
		}

		if summaryOnly {
			return outputResult(cmd.OutOrStdout(), report.Summary, outputFile, outputJSON)
		}
		return outputResult(cmd.OutOrStdout(), report, outputFile, outputJSON)
	},
}

// readTranscript returns the --transcript text or the --transcript-file contents
func readTranscript() (string, error) {
	if transcript != "" && transcriptFile != "" {
		return "", fmt.Errorf("use either --transcript or --transcript-file, not both")
	}
	if transcriptFile == "" {
		return transcript, nil
	}

	data, err := os.ReadFile(transcriptFile)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript %s: %w", transcriptFile, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func init() {
	analyzeCmd.Flags().StringVarP(&transcript, "transcript", "t", "", "transcript text")
	analyzeCmd.Flags().StringVar(&transcriptFile, "transcript-file", "", "read the transcript from a file")
	analyzeCmd.Flags().StringVar(&calibration, "calibration", "", "calibration policy: strict or lenient (overrides config)")
	analyzeCmd.Flags().StringVar(&ffmpegPath, "ffmpeg", "", "path to the ffmpeg binary")
	analyzeCmd.Flags().BoolVar(&normalize, "normalize", false, "loudness-normalize non-WAV input with ffmpeg")
	analyzeCmd.Flags().BoolVar(&removeDC, "remove-dc", false, "high-pass the recording to strip a constant offset")
	analyzeCmd.Flags().BoolVar(&summaryOnly, "summary", false, "print only the scores and coaching notes")
}
