package main

import (
	"bytes"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	treepatch "github.com/treepatch/go-treepatch"
	"github.com/treepatch/go-treepatch/changes"
	"github.com/treepatch/go-treepatch/encode"
	"github.com/treepatch/go-treepatch/exclude"
	"github.com/treepatch/go-treepatch/ir"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: apply requires 2 args, got %v", cli.ErrUsage, args)
	}
	base, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	exportDoc, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	export, err := changes.DecodeExport(exportDoc)
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}

	opts := []treepatch.Option{
		treepatch.WithPreservedFields(exclude.DefaultPreservedFields...),
	}
	if cfg.Exclusions != "" {
		policy, err := exclude.LoadFile(cfg.Exclusions)
		if err != nil {
			return err
		}
		opts = append(opts, treepatch.WithPolicy(policy))
	}
	if cfg.Target != "" {
		fallback, err := getObjFile(cc, cfg.Target)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", cfg.Target, err)
		}
		opts = append(opts, treepatch.WithFallback(fallback))
	}

	res, events, err := treepatch.Reconstruct(base, export.Differences, opts...)
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		for _, ev := range events {
			fmt.Fprintln(os.Stderr, ev)
		}
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	if cfg.Verify == "" {
		return nil
	}
	target, err := getObjFile(cc, cfg.Verify)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", cfg.Verify, err)
	}
	if !jsonEqual(res, target) {
		fmt.Fprintf(os.Stderr, "result differs from %s\n", cfg.Verify)
		return cli.ExitCodeErr(1)
	}
	return nil
}

func jsonEqual(a, b *ir.Node) bool {
	aBuf, bBuf := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	if err := encode.Encode(a, aBuf, encode.Compact(true)); err != nil {
		return false
	}
	if err := encode.Encode(b, bBuf, encode.Compact(true)); err != nil {
		return false
	}
	return jsonpatch.Equal(aBuf.Bytes(), bBuf.Bytes())
}
