package main

import (
	"bufio"
	"fmt"
	"strings"

	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"
	"page-replacement-simulator/internal/refstring"

	"github.com/urfave/cli/v2"
)

func (e *env) interactiveCommand() *cli.Command {
	return &cli.Command{
		Action: e.interactive,
		Name:   "interactive",
		Usage:  "prompts for the reference string, frame count and algorithm",
	}
}

func (e *env) interactive(ctx *cli.Context) error {
	scanner := bufio.NewScanner(e.in)
	prompt := func(msg string) (string, error) {
		fmt.Fprint(e.out, msg)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read input: %w", err)
			}
			return "", fmt.Errorf("unexpected end of input")
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	line, err := prompt("Enter reference string (space separated): ")
	if err != nil {
		return err
	}
	refs, err := refstring.ParseReferences(line)
	if err != nil {
		return err
	}

	line, err = prompt("Enter number of frames: ")
	if err != nil {
		return err
	}
	frames, err := refstring.ParseCapacity(line)
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, "\nChoose Algorithm:")
	for i, kind := range policy.Kinds() {
		fmt.Fprintf(e.out, "%d. %s\n", i+1, displayName(kind))
	}
	line, err = prompt("Enter choice: ")
	if err != nil {
		return err
	}
	kind, err := policy.ParseKind(line)
	if err != nil {
		return engine.ErrUnknownPolicy("interactive", fmt.Errorf("invalid choice %q", line))
	}

	res, err := e.svc.Simulate(ctx.Context, kind, refs, frames)
	if err != nil {
		return err
	}
	return e.printTrace(ctx, res, 0, false)
}
