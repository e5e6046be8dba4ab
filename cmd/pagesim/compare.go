package main

import (
	"fmt"
	"strings"

	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"

	"github.com/urfave/cli/v2"
)

var policiesFlag = cli.StringFlag{
	Name:  "policies",
	Usage: "comma separated policies to compare (default FIFO,LRU,OPTIMAL)",
}

func (e *env) compareCommand() *cli.Command {
	return &cli.Command{
		Action:    e.compare,
		Name:      "compare",
		Usage:     "runs several policies over the same input and charts their page faults",
		ArgsUsage: "[pages...]",
		Flags: []cli.Flag{
			&framesFlag,
			&refsFlag,
			&policiesFlag,
		},
	}
}

func (e *env) compare(ctx *cli.Context) error {
	var kinds []policy.Kind
	if list := ctx.String(policiesFlag.Name); list != "" {
		for _, name := range strings.Split(list, ",") {
			kind, err := policy.ParseKind(name)
			if err != nil {
				return engine.ErrUnknownPolicy("compare", err)
			}
			kinds = append(kinds, kind)
		}
	}
	refs, err := e.references(ctx)
	if err != nil {
		return err
	}

	cmp, err := e.svc.Compare(ctx.Context, refs, e.frames(ctx), kinds...)
	if err != nil {
		return err
	}

	width := 0
	for _, r := range cmp.Results {
		width = max(width, len(displayName(r.Policy)))
	}
	fmt.Fprintf(e.out, "Page faults with %d frames over %d references:\n\n", cmp.Capacity, len(refs))
	for _, r := range cmp.Results {
		fmt.Fprintf(e.out, "%-*s %4d  %s\n", width, displayName(r.Policy), r.Faults, strings.Repeat("#", r.Faults))
	}
	fmt.Fprintf(e.out, "\nFewest faults: %s\n", displayName(cmp.Best()))
	return nil
}
