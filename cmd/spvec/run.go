package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"honnef.co/go/spvec"
	"honnef.co/go/spvec/internal/params"
	"honnef.co/go/spvec/internal/raster"
	"honnef.co/go/spvec/internal/svg"
	"honnef.co/go/spvec/internal/trace"
)

type runOptions struct {
	settings  settingsFlags
	in        string
	out       string
	preview   string
	scale     float64
	size      int
	workers   int
	precision int
	image     bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Vectorize an image",
		Long: `Traces the contours of the dark shapes of an image, vectorizes them, and
writes an SVG document. The layers drawn into the document are chosen by the
svg settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVectorize(cmd, &opts)
		},
	}
	fs := cmd.Flags()
	opts.settings.register(fs)
	fs.StringVar(&opts.in, "in", "", "Input image (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&opts.out, "out", "out.svg", "Output SVG document")
	fs.StringVar(&opts.preview, "preview", "", "Also render the result into this image (png, bmp, tiff)")
	fs.Float64Var(&opts.scale, "scale", 1, "Scale of the preview image")
	fs.IntVar(&opts.size, "size", 0, "Fit the preview into a size×size image, centered (overrides --scale)")
	fs.IntVarP(&opts.workers, "workers", "j", 0, "Contours vectorized in parallel (0 for one per CPU)")
	fs.IntVar(&opts.precision, "precision", 2, "Maximum fractional digits of coordinates (0 for exact)")
	fs.BoolVar(&opts.image, "image", true, "Reference the input image as the SVG's background")
	cmd.MarkFlagRequired("in")
	return cmd
}

func runVectorize(cmd *cobra.Command, opts *runOptions) error {
	f, err := opts.settings.load()
	if err != nil {
		return err
	}
	if err := f.Config.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if opts.scale <= 0 || math.IsInf(opts.scale, 0) || math.IsNaN(opts.scale) {
		return fmt.Errorf("invalid preview scale %g", opts.scale)
	}

	img, format, err := raster.Open(opts.in)
	if err != nil {
		return err
	}
	bm := trace.NewBitmapFromImage(img, f.Trace.Threshold)
	slog.Info("Loaded image", "file", opts.in, "format", format, "width", bm.W, "height", bm.H)

	start := time.Now()
	contours := trace.NewTracer(bm).Contours(f.Trace.MiddlePoints)
	traced := time.Since(start)
	slog.Debug("Traced contours", "contours", len(contours), "elapsed", traced)

	workers := opts.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	start = time.Now()
	results, err := spvec.VectorizeAll(cmd.Context(), contours, &f.Config, workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var total spvec.Stats
	for _, res := range results {
		total.Add(res.Stats)
	}
	slog.Info("Vectorized",
		"contours", total.Contours,
		"points", total.Points,
		"lines", total.Lines,
		"line_penalty", total.LinePenalty,
		"line_area", total.LineArea,
		"line_area_ok", total.LineAreaOK,
		"curves", total.Curves,
		"straight", total.Straight,
		"curve_penalty", total.CurvePenalty,
		"line_time", total.LineTime,
		"curve_time", total.CurveTime,
		"elapsed", elapsed,
	)

	if err := writeSVG(opts, f, bm, contours, results); err != nil {
		return err
	}
	if opts.preview != "" {
		if err := writePreview(opts, bm, results); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d | %d %.0f %.0fms | %d %d %.0f %.1fms\n",
		opts.in, total.Points,
		total.Lines, total.LinePenalty, ms(total.LineTime),
		total.Curves, total.Straight, total.CurvePenalty, ms(total.CurveTime))
	return nil
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

func writeSVG(opts *runOptions, f *params.File, bm *trace.Bitmap, contours [][]spvec.Point, results []*spvec.Result) (err error) {
	file, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	w := svg.NewWriter(file, opts.precision)
	w.Header(bm.W, bm.H)
	if opts.image {
		w.Image(bm.W, bm.H, imageRef(opts.out, opts.in))
	}
	w.Results(contours, results, f.SVG)
	if err := w.Close(); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	slog.Info("Wrote SVG", "file", opts.out)
	return nil
}

// imageRef returns the path of img relative to the directory of doc, or
// img unchanged if there is no such path.
func imageRef(doc, img string) string {
	absDoc, err := filepath.Abs(doc)
	if err != nil {
		return img
	}
	absImg, err := filepath.Abs(img)
	if err != nil {
		return img
	}
	rel, err := filepath.Rel(filepath.Dir(absDoc), absImg)
	if err != nil {
		return img
	}
	return filepath.ToSlash(rel)
}

func writePreview(opts *runOptions, bm *trace.Bitmap, results []*spvec.Result) error {
	paths := make([]spvec.BezPath, len(results))
	for i, res := range results {
		paths[i] = res.Curves.BezPath()
	}
	w := int(math.Ceil(float64(bm.W) * opts.scale))
	h := int(math.Ceil(float64(bm.H) * opts.scale))
	aff := spvec.Scale(opts.scale, opts.scale)
	if opts.size > 0 && bm.W > 0 && bm.H > 0 {
		w, h = opts.size, opts.size
		src := spvec.Rect{X1: float64(bm.W), Y1: float64(bm.H)}
		aff = spvec.MapRect(src, spvec.Rect{X1: float64(w), Y1: float64(h)})
	}
	mask := raster.Render(paths, w, h, aff)
	if err := raster.Save(opts.preview, raster.Preview(mask)); err != nil {
		return err
	}
	slog.Info("Wrote preview", "file", opts.preview, "width", w, "height", h)
	return nil
}
