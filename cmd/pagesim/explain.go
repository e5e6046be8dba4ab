package main

import (
	"fmt"

	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"

	"github.com/urfave/cli/v2"
)

func (e *env) explainCommand() *cli.Command {
	return &cli.Command{
		Action:    e.explain,
		Name:      "explain",
		Usage:     "describes how a policy chooses its victim",
		ArgsUsage: "[policy]",
	}
}

func (e *env) explain(ctx *cli.Context) error {
	kinds := policy.Kinds()
	if ctx.Args().Present() {
		kind, err := policy.ParseKind(ctx.Args().First())
		if err != nil {
			return engine.ErrUnknownPolicy("explain", err)
		}
		kinds = []policy.Kind{kind}
	}
	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(e.out)
		}
		fmt.Fprintln(e.out, policy.Describe(kind))
	}
	return nil
}
