package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treepatch/go-treepatch/exclude"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: check requires a policy file, got %v", cli.ErrUsage, args)
	}
	policy, err := exclude.LoadFile(args[0])
	if err != nil {
		return err
	}
	engine := exclude.New(policy)
	warnings := engine.Warnings()
	for _, w := range warnings {
		fmt.Fprintln(cc.Out, w)
	}
	fmt.Fprintf(cc.Out, "%d exact paths, %d patterns, %d unusable rules\n",
		len(policy.ExcludedPaths), len(policy.ExcludedRegexPaths), len(warnings))
	if len(warnings) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
