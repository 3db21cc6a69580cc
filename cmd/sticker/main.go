// Command sticker generates print-ready sticker label PDFs from a CSV or
// XLSX part list.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/sticker"
)

// fileConfig mirrors the flag set for callers that prefer a config file.
// Flags win over file values.
type fileConfig struct {
	LocationWidths  []float64 `yaml:"location_widths"`
	NormalizeWidths bool      `yaml:"normalize_widths"`
	Logo            string    `yaml:"logo"`
	QRSizeCM        float64   `yaml:"qr_size_cm"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output     string
		logoPath   string
		widths     []float64
		normalize  bool
		qrSize     float64
		configPath string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "sticker <input.csv|input.xlsx>",
		Short: "Generate sticker label PDFs from part data",
		Long: `sticker reads a part list from a CSV or XLSX file and produces one
10x15cm label page per row, each carrying a QR code with the part's data.
Column names are matched fuzzily against known spellings.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(quiet)
			if err != nil {
				return err
			}
			defer logger.Sync()
			log := logger.Sugar()

			// Config file first, flags override.
			var fc fileConfig
			if configPath != "" {
				data, err := os.ReadFile(configPath)
				if err != nil {
					return fmt.Errorf("reading config: %w", err)
				}
				if err := yaml.Unmarshal(data, &fc); err != nil {
					return fmt.Errorf("parsing config: %w", err)
				}
			}
			if !cmd.Flags().Changed("logo") && fc.Logo != "" {
				logoPath = fc.Logo
			}
			if !cmd.Flags().Changed("widths") && len(fc.LocationWidths) == 5 {
				widths = fc.LocationWidths
			}
			if !cmd.Flags().Changed("normalize") {
				normalize = fc.NormalizeWidths
			}
			if !cmd.Flags().Changed("qr-size") && fc.QRSizeCM > 0 {
				qrSize = fc.QRSizeCM
			}

			input := args[0]
			gen := sticker.Open(input)
			if logoPath != "" {
				gen = gen.Logo(logoPath)
			}
			if len(widths) == 5 {
				gen = gen.LocationWidths(widths[0], widths[1], widths[2], widths[3], widths[4])
			} else if len(widths) != 0 {
				return fmt.Errorf("--widths needs exactly 5 fractions, got %d", len(widths))
			}
			if normalize {
				gen = gen.NormalizedWidths()
			}
			if qrSize > 0 {
				gen = gen.QRSize(qrSize)
			}

			// Show which columns were detected before generating.
			cm, err := gen.Columns()
			if err != nil {
				return err
			}
			for _, b := range cm.Report() {
				if b.Found {
					log.Infow("column detected", "field", b.Field.String(), "column", b.Column)
				} else {
					log.Warnw("column not found", "field", b.Field.String())
				}
			}

			gen = gen.Progress(func(done, total int) {
				if done == total || done%50 == 0 {
					log.Infof("laying out labels: %d/%d", done, total)
				}
			})

			if output == "" {
				output = sticker.DefaultFilename(time.Now())
			}
			warnings, err := gen.SavePDF(output)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				log.Warn(w.String())
			}
			log.Infow("labels generated", "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF path (default sticker_labels_<timestamp>.pdf)")
	cmd.Flags().StringVar(&logoPath, "logo", "", "optional logo image (PNG/JPEG/GIF)")
	cmd.Flags().Float64SliceVar(&widths, "widths", nil, "five location-row width fractions: header,box1..box4")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "renormalize width fractions instead of rejecting an invalid total")
	cmd.Flags().Float64Var(&qrSize, "qr-size", 0, "QR edge length in cm")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "errors only")

	return cmd
}

func newLogger(quiet bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if quiet {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return cfg.Build()
}
