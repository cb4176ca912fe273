package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andresmejia3/matte/internal/config"
	apperrors "github.com/andresmejia3/matte/internal/errors"
	"github.com/andresmejia3/matte/internal/logger"
	"github.com/andresmejia3/matte/internal/pipeline"
	"github.com/andresmejia3/matte/internal/types"
	"github.com/andresmejia3/matte/internal/utils"
)

// processOptions holds the raw flag values for the process command. They are
// folded into a config.Config by buildConfig, which respects the
// defaults → preset → explicit-flags precedence.
type processOptions struct {
	InputDir       string
	Width          int
	Height         int
	LandscapeVert  float64
	LandscapeHoriz float64
	PortraitVert   float64
	PortraitHoriz  float64
	JPEGQuality    int
	Prefix         string
	SeparateFolder bool
	Preset         string
	PresetsFile    string
}

var processOpts processOptions

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Add white borders to every image in a folder",
	Run: func(cmd *cobra.Command, args []string) {
		runProcess(cmd, processOpts)
	},
}

func init() {
	defaults := config.Default()

	processCmd.Flags().StringVarP(&processOpts.InputDir, "input", "i", "", "Folder containing images to process")
	processCmd.Flags().IntVar(&processOpts.Width, "width", defaults.TargetWidth, "Target width for output images")
	processCmd.Flags().IntVar(&processOpts.Height, "height", defaults.TargetHeight, "Target height for output images")
	processCmd.Flags().Float64Var(&processOpts.LandscapeVert, "landscape-vert", defaults.LandscapeVert, "Vertical border ratio for landscape images")
	processCmd.Flags().Float64Var(&processOpts.LandscapeHoriz, "landscape-horiz", defaults.LandscapeHoriz, "Horizontal border ratio for landscape images")
	processCmd.Flags().Float64Var(&processOpts.PortraitVert, "portrait-vert", defaults.PortraitVert, "Vertical border ratio for portrait images")
	processCmd.Flags().Float64Var(&processOpts.PortraitHoriz, "portrait-horiz", defaults.PortraitHoriz, "Horizontal border ratio for portrait images")
	processCmd.Flags().IntVar(&processOpts.JPEGQuality, "jpeg-quality", defaults.JPEGQuality, "JPEG output quality (1-100)")
	processCmd.Flags().StringVar(&processOpts.Prefix, "prefix", defaults.OutputPrefix, "Prefix for output filenames")
	processCmd.Flags().BoolVar(&processOpts.SeparateFolder, "separate-folder", defaults.SeparateFolder, "Write output into a dedicated subfolder")
	processCmd.Flags().StringVar(&processOpts.Preset, "preset", "", "Named border preset to apply")
	processCmd.Flags().StringVar(&processOpts.PresetsFile, "presets-file", "", "YAML file holding named border presets")

	processCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(processCmd)
}

// buildConfig resolves the effective configuration: stock defaults, then the
// chosen preset, then any flag the user explicitly set. The changed callback
// reports whether a flag was set on the command line, so preset values only
// survive where the user stayed silent.
func buildConfig(opts processOptions, changed func(name string) bool, presets map[string]config.Preset) (config.Config, error) {
	cfg := config.Default()

	if opts.Preset != "" {
		if !cfg.ApplyPreset(opts.Preset, presets) {
			return cfg, fmt.Errorf("unknown preset %q", opts.Preset)
		}
	}

	overrides := map[string]func(){
		"width":           func() { cfg.TargetWidth = opts.Width },
		"height":          func() { cfg.TargetHeight = opts.Height },
		"landscape-vert":  func() { cfg.LandscapeVert = opts.LandscapeVert },
		"landscape-horiz": func() { cfg.LandscapeHoriz = opts.LandscapeHoriz },
		"portrait-vert":   func() { cfg.PortraitVert = opts.PortraitVert },
		"portrait-horiz":  func() { cfg.PortraitHoriz = opts.PortraitHoriz },
		"jpeg-quality":    func() { cfg.JPEGQuality = opts.JPEGQuality },
		"prefix":          func() { cfg.OutputPrefix = opts.Prefix },
		"separate-folder": func() { cfg.SeparateFolder = opts.SeparateFolder },
	}
	for name, apply := range overrides {
		if changed(name) {
			apply()
		}
	}

	return cfg, nil
}

func runProcess(cmd *cobra.Command, opts processOptions) {
	info, err := os.Stat(opts.InputDir)
	if err != nil {
		if os.IsNotExist(err) {
			utils.Die("Input folder does not exist", err)
		}
		utils.Die("Unable to access input folder", err)
	}
	if !info.IsDir() {
		utils.Die("Input path is a file, expected a folder", nil)
	}

	var presets map[string]config.Preset
	if opts.Preset != "" {
		if opts.PresetsFile == "" {
			utils.Die("--preset requires --presets-file", nil)
		}
		presets, err = config.LoadPresets(opts.PresetsFile)
		if err != nil {
			utils.Die("Failed to load presets", err)
		}
	}

	cfg, err := buildConfig(opts, cmd.Flags().Changed, presets)
	if err != nil {
		utils.Die("Invalid preset selection", err)
	}
	if err := cfg.Validate(); err != nil {
		utils.Die("Invalid configuration", err)
	}

	printConfig(&cfg, opts.InputDir)

	files, err := pipeline.Discover(opts.InputDir)
	if err != nil {
		utils.Die("Failed to read input folder", err)
	}

	logger.WithFields(logrus.Fields{
		"input":  opts.InputDir,
		"files":  len(files),
		"target": fmt.Sprintf("%dx%d", cfg.TargetWidth, cfg.TargetHeight),
	}).Info("starting batch")

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("🖼️  Adding borders"),
		progressbar.OptionSetWriter(os.Stderr), // Write bar to Stderr
		progressbar.OptionShowCount(),
	)

	startedAt := time.Now()
	outcomes := make([]types.Outcome, 0, len(files))

	summary, err := pipeline.Run(&cfg, opts.InputDir, files, func(o types.Outcome) {
		bar.Add(1)
		outcomes = append(outcomes, o)
		if o.OK() {
			fmt.Printf("✅ Successfully processed %s in %s\n", o.Filename, utils.FormatSeconds(o.Duration))
		} else {
			logger.WithFields(logrus.Fields{
				"file": o.Filename,
				"kind": string(apperrors.KindOf(o.Err)),
			}).Debug("stage failure")
			fmt.Printf("❌ Error processing %s: %v\n", o.Filename, o.Err)
		}
	})
	if err != nil {
		utils.Die("Failed to create output folder", err)
	}
	bar.Finish()

	printSummary(&summary)

	if DB != nil {
		runID, err := DB.RecordRun(cmd.Context(), summary.RunRecord(opts.InputDir, startedAt), outcomes)
		if err != nil {
			logger.WithError(err).Warn("failed to record run history")
		} else {
			logger.WithField("run_id", runID).Info("run recorded")
		}
	}
}

// printConfig echoes the resolved configuration before the batch starts.
func printConfig(cfg *config.Config, inputDir string) {
	fmt.Println("\n=== Configuration ===")
	fmt.Printf("Input folder: %s\n", inputDir)
	fmt.Printf("Target dimensions: %dx%d\n", cfg.TargetWidth, cfg.TargetHeight)
	fmt.Printf("Landscape borders: Vertical=%.1f%%, Horizontal=%.1f%%\n",
		cfg.LandscapeVert*100, cfg.LandscapeHoriz*100)
	fmt.Printf("Portrait borders: Vertical=%.1f%%, Horizontal=%.1f%%\n",
		cfg.PortraitVert*100, cfg.PortraitHoriz*100)
	fmt.Printf("JPEG quality: %d\n", cfg.JPEGQuality)
	fmt.Printf("Output prefix: %s\n", cfg.OutputPrefix)
	fmt.Printf("Separate output folder: %v\n", cfg.SeparateFolder)
	fmt.Println("==================")
	fmt.Println()
}

// printSummary renders the end-of-run report. With zero successes only the
// counts are shown; average and extrema are meaningless then and omitted.
func printSummary(s *pipeline.Summary) {
	fmt.Printf("\nTotal execution time: %s\n", utils.FormatSeconds(s.Wall))
	fmt.Printf("\n📊 === Processing Summary ===\n")
	fmt.Printf("✅ Total images processed: %d\n", s.Succeeded)
	fmt.Printf("❌ Failed images: %d\n", s.Failed)

	if avg, ok := s.Average(); ok {
		fmt.Printf("⏱️  Average processing time: %s\n", utils.FormatSeconds(avg))
		fmt.Printf("🚀 Fastest image: %s (%s)\n", s.Fastest.Filename, utils.FormatSeconds(s.Fastest.Duration))
		fmt.Printf("🐢 Slowest image: %s (%s)\n", s.Slowest.Filename, utils.FormatSeconds(s.Slowest.Duration))
	}
	fmt.Println()
}
