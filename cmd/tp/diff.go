package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	treepatch "github.com/treepatch/go-treepatch"
	"github.com/treepatch/go-treepatch/encode"
	"github.com/treepatch/go-treepatch/exclude"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	base, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	target, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var opts []treepatch.Option
	if cfg.Exclusions != "" {
		policy, err := exclude.LoadFile(cfg.Exclusions)
		if err != nil {
			return err
		}
		opts = append(opts, treepatch.WithPolicy(policy))
	}
	export := treepatch.DiffExport(base, target, args[0], args[1], opts...)
	if cfg.Report {
		if err := treepatch.WriteReport(cc.Out, export.Differences,
			treepatch.ReportColors(cfg.colorOut(cc.Out))); err != nil {
			return err
		}
	} else {
		if err := encode.Encode(export.ToNode(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	if !export.Differences.Empty() {
		return cli.ExitCodeErr(1)
	}
	return nil
}
