package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/gridqr/qrgen/cmd/qrgen/internal/config"
	"github.com/gridqr/qrgen/cmd/qrgen/internal/render"
	"github.com/gridqr/qrgen/qr"
)

var rootCmd = &cobra.Command{
	Use:   "qrgen [value]",
	Short: "Generate a QR Code symbol from a payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var (
	flagConfig     string
	flagECL        string
	flagVersion    int
	flagMask       int
	flagQuiet      int
	flagUppercase  bool
	flagInvert     bool
	flagFixECL     bool
	flagFile       string
	flagOutput     string
	flagBMPScale   int
	flagSVGPoint   float64
	flagSVGRound   float64
	flagSVGFinder  float64
	flagSVGAlign   float64
	flagSVGColor   string
	flagSixelScale int
	flagOpen       bool
	flagSaveConfig string
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "YAML file of default flag values")
	f.StringVar(&flagECL, "ecl", "", "error correction level: l, m, q, h")
	f.IntVar(&flagVersion, "version", 0, "fixed version 1-40 (0 = auto)")
	f.IntVar(&flagMask, "mask", -1, "fixed mask pattern 0-7 (-1 = auto)")
	f.IntVar(&flagQuiet, "quiet", 0, "quiet zone width in modules")
	f.BoolVar(&flagUppercase, "uppercase", false, "fold lowercase letters for alphanumeric mode")
	f.BoolVar(&flagInvert, "invert", false, "invert dark/light modules")
	f.BoolVar(&flagFixECL, "fixecl", false, "disable ECL strengthening")
	f.StringVar(&flagFile, "file", "", "output file path (default: stdout)")
	f.StringVar(&flagOutput, "output", "", "output format: text, bmp, svg, sixel")
	f.IntVar(&flagBMPScale, "bmp-scale", 0, "pixels per module for bmp output")
	f.Float64Var(&flagSVGPoint, "svg-point", 0, "module size for svg output")
	f.Float64Var(&flagSVGRound, "svg-round", 0, "corner radius for ordinary svg modules")
	f.Float64Var(&flagSVGFinder, "svg-finder-round", 0, "corner radius for svg finder modules")
	f.Float64Var(&flagSVGAlign, "svg-alignment-round", 0, "corner radius for svg alignment modules")
	f.StringVar(&flagSVGColor, "svg-color", "", "module fill color for svg output")
	f.IntVar(&flagSixelScale, "sixel-scale", 0, "pixels per module for sixel output")
	f.BoolVar(&flagOpen, "open", false, "open the rendered file in the default viewer")
	f.StringVar(&flagSaveConfig, "save-config", "", "write the resolved flag values to this YAML path and exit")
}

// Execute runs the root command, printing any error to stderr and
// exiting non-zero, per spec.md §6's exit-code contract.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	setupLogging()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	mergeFlags(cmd, cfg)

	if flagSaveConfig != "" {
		return config.Save(flagSaveConfig, cfg)
	}

	ecl, err := parseECL(cfg.ECL)
	if err != nil {
		return err
	}

	payload := args[0]

	gen := qr.NewGenerator(0, ecl)
	gen.SetOptimizeECL(!cfg.FixECL)
	if cfg.Version != 0 {
		gen.SetFixedVersion(cfg.Version)
	}
	if cfg.Mask != -1 {
		gen.SetMask(cfg.Mask)
	}
	if err := gen.AppendSegment(qr.ModeAutomatic, []byte(payload), qr.AutoLength, cfg.Uppercase); err != nil {
		return err
	}

	dim, bufSize, scratchSize, err := gen.PlanSizes()
	if err != nil {
		return err
	}
	out := make([]byte, bufSize)
	scratch := make([]byte, scratchSize)
	if err := gen.Generate(out, scratch); err != nil {
		return err
	}

	slog.Info("qrgen: generated symbol",
		"version", gen.Version(), "ecl", gen.ECL().String(),
		"mask", gen.Mask(), "dimension", dim)

	w := os.Stdout
	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if flagFile != "" {
		f, err := os.Create(flagFile)
		if err != nil {
			return fmt.Errorf("opening output file: %w", err)
		}
		defer f.Close()
		if err := renderTo(gen, cfg, f); err != nil {
			return err
		}
	} else if err := renderTo(gen, cfg, w); err != nil {
		return err
	}

	if cfg.Open {
		if flagFile == "" {
			return fmt.Errorf("--open requires --file")
		}
		if err := browser.OpenFile(flagFile); err != nil {
			slog.Warn("qrgen: could not open rendered file", "err", err)
		}
	}
	return nil
}

func renderTo(gen *qr.Generator, cfg *config.Config, w *os.File) error {
	switch strings.ToLower(cfg.Output) {
	case "", "text":
		return render.Text(gen, cfg.Quiet, cfg.Invert, w)
	case "bmp":
		return render.BMP(gen, cfg.Quiet, cfg.BMPScale, cfg.Invert, w)
	case "svg":
		return render.SVG(gen, cfg.Quiet, cfg.SVGPoint, cfg.SVGRound, cfg.SVGFinderRound, cfg.SVGAlignmentRound, cfg.SVGColor, cfg.Invert, w)
	case "sixel":
		return render.Sixel(gen, cfg.Quiet, cfg.SixelScale, cfg.Invert, w)
	default:
		return fmt.Errorf("%w: unknown output format %q", qr.ErrInvalidOption, cfg.Output)
	}
}

// mergeFlags overlays explicitly-set flags onto cfg, matching
// dfbb-im2code's "flags override config" merge rule.
func mergeFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("ecl") {
		cfg.ECL = flagECL
	}
	if f.Changed("version") {
		cfg.Version = flagVersion
	}
	if f.Changed("mask") {
		cfg.Mask = flagMask
	}
	if f.Changed("quiet") {
		cfg.Quiet = flagQuiet
	}
	if f.Changed("uppercase") {
		cfg.Uppercase = flagUppercase
	}
	if f.Changed("invert") {
		cfg.Invert = flagInvert
	}
	if f.Changed("fixecl") {
		cfg.FixECL = flagFixECL
	}
	if f.Changed("output") {
		cfg.Output = flagOutput
	}
	if f.Changed("bmp-scale") {
		cfg.BMPScale = flagBMPScale
	}
	if f.Changed("svg-point") {
		cfg.SVGPoint = flagSVGPoint
	}
	if f.Changed("svg-round") {
		cfg.SVGRound = flagSVGRound
	}
	if f.Changed("svg-finder-round") {
		cfg.SVGFinderRound = flagSVGFinder
	}
	if f.Changed("svg-alignment-round") {
		cfg.SVGAlignmentRound = flagSVGAlign
	}
	if f.Changed("svg-color") {
		cfg.SVGColor = flagSVGColor
	}
	if f.Changed("sixel-scale") {
		cfg.SixelScale = flagSixelScale
	}
	if f.Changed("open") {
		cfg.Open = flagOpen
	}
}

func parseECL(s string) (qr.ECL, error) {
	switch strings.ToLower(s) {
	case "l":
		return qr.ECL_L, nil
	case "m", "":
		return qr.ECL_M, nil
	case "q":
		return qr.ECL_Q, nil
	case "h":
		return qr.ECL_H, nil
	default:
		return 0, fmt.Errorf("%w: unknown ecl %q", qr.ErrInvalidOption, s)
	}
}

// setupLogging configures the default slog handler as a human-readable
// line to stderr, the same shape dfbb-im2code's setupLogging produces
// for its log file, adapted to a short-lived CLI invocation instead of
// a daemon.
func setupLogging() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}
