package cdcli

import (
	"context"

	"oss.terrastruct.com/xdefer"
	"oss.terrastruct.com/xjson"

	"github.com/piliotov/BDM-sub000/cdlib"
	"github.com/piliotov/BDM-sub000/cdselect"
	"github.com/piliotov/BDM-sub000/lib/log"
	"github.com/piliotov/BDM-sub000/lib/xmain"
)

func inputOutput(ms *xmain.State, name string) (inputPath, outputPath string, err error) {
	args := ms.Opts.Flags.Args()[1:]
	switch {
	case len(args) == 0:
		return "", "", xmain.UsageErrorf("%s must be passed an input file", name)
	case len(args) > 2:
		return "", "", xmain.UsageErrorf("too many arguments passed to %s", name)
	}
	inputPath = ms.AbsPath(args[0])
	outputPath = "-"
	if len(args) == 2 {
		outputPath = ms.AbsPath(args[1])
	}
	return inputPath, outputPath, nil
}

// transformCmd implements layout and route. layout places every node even
// when the input already has coordinates.
func transformCmd(ctx context.Context, ms *xmain.State, opts runOpts, relayout bool) error {
	name := "route"
	if relayout {
		name = "layout"
	}
	inputPath, outputPath, err := inputOutput(ms, name)
	if err != nil {
		return err
	}

	run := func(ctx context.Context) error {
		return transform(ctx, ms, opts, relayout, inputPath, outputPath)
	}

	if opts.watch {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		if outputPath == "-" {
			return xmain.UsageErrorf("-w[atch] requires an output file")
		}
		w, err := newWatcher(ctx, ms, watcherOpts{
			inputPath: inputPath,
			timeout:   opts.timeout,
			process:   run,
		})
		if err != nil {
			return err
		}
		return w.run()
	}

	ctx, cancel := log.WithTimeout(ctx, opts.timeout)
	defer cancel()
	err = run(ctx)
	if err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully wrote %v", ms.HumanPath(outputPath))
	}
	return nil
}

func transform(ctx context.Context, ms *xmain.State, opts runOpts, relayout bool, inputPath, outputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to process %s", ms.HumanPath(inputPath))

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}
	layout := opts.layout
	d, err := cdlib.Import(ctx, input, &cdlib.ImportOptions{
		Layout:      &layout,
		ForceLayout: relayout,
	})
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	ms.Log.Debug.Printf("%d nodes, %d relations", len(d.Nodes), len(d.Relations))
	return ms.WritePath(outputPath, append(cdlib.Marshal(d), '\n'))
}

func validateCmd(ctx context.Context, ms *xmain.State) (err error) {
	defer xdefer.Errorf(&err, "failed to validate")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) != 1 {
		return xmain.UsageErrorf("validate must be passed exactly one input file")
	}
	inputPath := ms.AbsPath(args[0])

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}
	d, err := cdlib.Parse(input)
	if err != nil {
		return err
	}
	err = d.Validate()
	if err != nil {
		return err
	}
	ms.Log.Success.Printf("%s is valid", ms.HumanPath(inputPath))
	return nil
}

func bboxCmd(ctx context.Context, ms *xmain.State, opts runOpts) (err error) {
	defer xdefer.Errorf(&err, "failed to compute bounding box")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) != 1 {
		return xmain.UsageErrorf("bbox must be passed exactly one input file")
	}
	inputPath := ms.AbsPath(args[0])

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}
	layout := opts.layout
	d, err := cdlib.Import(ctx, input, &cdlib.ImportOptions{Layout: &layout})
	if err != nil {
		return err
	}
	b := cdselect.NodesBoundingBox(d.Nodes)
	_, err = ms.Stdout.Write(append(xjson.Marshal(b), '\n'))
	return err
}
