package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"
	"page-replacement-simulator/internal/refstring"

	"github.com/urfave/cli/v2"
)

var (
	policyFlag = cli.StringFlag{
		Name:    "policy",
		Aliases: []string{"p"},
		Usage:   "replacement policy: FIFO, LRU, OPTIMAL, LFU or RANDOM (1, 2, 3 also work)",
		EnvVars: []string{"PAGESIM_POLICY"},
	}
	framesFlag = cli.IntFlag{
		Name:    "frames",
		Aliases: []string{"f"},
		Usage:   "number of page frames",
		EnvVars: []string{"PAGESIM_FRAMES"},
	}
	refsFlag = cli.StringFlag{
		Name:    "refs",
		Aliases: []string{"r"},
		Usage:   "reference string, pages separated by spaces or commas; read from args or stdin if empty",
	}
	delayFlag = cli.DurationFlag{
		Name:    "delay",
		Usage:   "pause between steps to animate the run, e.g. 500ms",
		EnvVars: []string{"PAGESIM_STEP_DELAY"},
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "mark faults and evictions on every step",
	}
)

func (e *env) runCommand() *cli.Command {
	return &cli.Command{
		Action:    e.run,
		Name:      "run",
		Usage:     "simulates one policy and prints the frames after every reference",
		ArgsUsage: "[pages...]",
		Flags: []cli.Flag{
			&policyFlag,
			&framesFlag,
			&refsFlag,
			&delayFlag,
			&verboseFlag,
		},
	}
}

func (e *env) run(ctx *cli.Context) error {
	name := e.cfg.Policy
	if ctx.IsSet(policyFlag.Name) {
		name = ctx.String(policyFlag.Name)
	}
	kind, err := policy.ParseKind(name)
	if err != nil {
		return engine.ErrUnknownPolicy("run", err)
	}
	refs, err := e.references(ctx)
	if err != nil {
		return err
	}
	delay := e.cfg.StepDelay
	if ctx.IsSet(delayFlag.Name) {
		delay = ctx.Duration(delayFlag.Name)
	}

	res, err := e.svc.Simulate(ctx.Context, kind, refs, e.frames(ctx))
	if err != nil {
		return err
	}

	return e.printTrace(ctx, res, delay, ctx.Bool(verboseFlag.Name))
}

// printTrace prints one line per step, pausing delay between steps.
func (e *env) printTrace(ctx *cli.Context, res *engine.Result[int], delay time.Duration, verbose bool) error {
	fmt.Fprintf(e.out, "\n%s Simulation:\n\n", displayName(res.Policy))
	for i, step := range res.Steps {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
		fmt.Fprintf(e.out, "Step %d: %s", i+1, formatFrames(step.Frames))
		if verbose {
			fmt.Fprint(e.out, describeStep(step))
		}
		fmt.Fprintln(e.out)
	}
	fmt.Fprintf(e.out, "\nTotal Page Faults: %d\n", res.Faults)
	return nil
}

// references reads the reference string from --refs, the positional
// arguments or stdin, in that order.
func (e *env) references(ctx *cli.Context) ([]int, error) {
	if ctx.IsSet(refsFlag.Name) {
		return refstring.ParseReferences(ctx.String(refsFlag.Name))
	}
	if ctx.Args().Present() {
		return refstring.ParseReferences(strings.Join(ctx.Args().Slice(), " "))
	}
	data, err := io.ReadAll(e.in)
	if err != nil {
		return nil, fmt.Errorf("failed to read references: %w", err)
	}
	return refstring.ParseReferences(string(data))
}

func (e *env) frames(ctx *cli.Context) int {
	if ctx.IsSet(framesFlag.Name) {
		return ctx.Int(framesFlag.Name)
	}
	return e.cfg.Frames
}

func displayName(kind policy.Kind) string {
	if kind == policy.Optimal {
		return "Optimal"
	}
	return string(kind)
}

func formatFrames(frames []int) string {
	parts := make([]string, len(frames))
	for i, p := range frames {
		parts[i] = strconv.Itoa(p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func describeStep(step engine.Step[int]) string {
	switch {
	case step.Evicted:
		return fmt.Sprintf("  page %d: fault, evicted %d", step.Page, step.Victim)
	case step.Fault:
		return fmt.Sprintf("  page %d: fault", step.Page)
	default:
		return fmt.Sprintf("  page %d: hit", step.Page)
	}
}
