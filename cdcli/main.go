package cdcli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"github.com/piliotov/BDM-sub000/cdlayouts/cdforce"
	"github.com/piliotov/BDM-sub000/lib/go2"
	"github.com/piliotov/BDM-sub000/lib/log"
	"github.com/piliotov/BDM-sub000/lib/version"
	"github.com/piliotov/BDM-sub000/lib/xmain"
)

type runOpts struct {
	layout  cdforce.ConfigurableOpts
	watch   bool
	timeout time.Duration
}

func Run(ctx context.Context, ms *xmain.State) (err error) {
	// These should be kept up-to-date with help()
	watchFlag, err := ms.Opts.Bool("CONDEC_WATCH", "watch", "w", false, "watch the input file and run again whenever it changes")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	iterationsFlag, err := ms.Opts.Int64("CONDEC_ITERATIONS", "iterations", "i", int64(cdforce.DefaultOpts.Iterations), "number of force layout rounds")
	if err != nil {
		return err
	}
	seedFlag, err := ms.Opts.Int64("CONDEC_SEED", "seed", "", cdforce.DefaultOpts.Seed, "seed of the initial jitter of the force layout")
	if err != nil {
		return err
	}
	canvasWidthFlag, err := ms.Opts.Float64("CONDEC_CANVAS_WIDTH", "canvas-width", "", cdforce.DefaultOpts.CanvasWidth, "width of the canvas the force layout runs on")
	if err != nil {
		return err
	}
	canvasHeightFlag, err := ms.Opts.Float64("CONDEC_CANVAS_HEIGHT", "canvas-height", "", cdforce.DefaultOpts.CanvasHeight, "height of the canvas the force layout runs on")
	if err != nil {
		return err
	}
	paddingFlag, err := ms.Opts.Float64("CONDEC_PADDING", "padding", "p", cdforce.DefaultOpts.Padding, "distance of the top-left node centers from the origin after layout")
	if err != nil {
		return err
	}
	timeoutFlag, err := ms.Opts.Int64("", "timeout", "", 120, "the maximum number of seconds a single run may take. $CONDEC_TIMEOUT takes precedence")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}
	if err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}

	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	if *iterationsFlag < 0 {
		return xmain.UsageErrorf("-i[terations] must be non-negative: %d", *iterationsFlag)
	}
	if *canvasWidthFlag <= 0 || *canvasHeightFlag <= 0 {
		return xmain.UsageErrorf("--canvas-width and --canvas-height must be positive")
	}

	opts := runOpts{
		layout: cdforce.ConfigurableOpts{
			Iterations:   int(*iterationsFlag),
			CanvasWidth:  *canvasWidthFlag,
			CanvasHeight: *canvasHeightFlag,
			Padding:      *paddingFlag,
			Seed:         *seedFlag,
		},
		watch:   *watchFlag,
		timeout: time.Duration(*timeoutFlag) * time.Second,
	}

	args := ms.Opts.Flags.Args()
	if len(args) == 0 {
		help(ms)
		return nil
	}
	switch args[0] {
	case "layout":
		return transformCmd(ctx, ms, opts, true)
	case "route":
		return transformCmd(ctx, ms, opts, false)
	case "validate":
		return validateCmd(ctx, ms)
	case "bbox":
		return bboxCmd(ctx, ms, opts)
	case "version":
		if len(args) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	case "help":
		help(ms)
		return nil
	default:
		return xmain.UsageErrorf("unknown subcommand %q", args[0])
	}
}
