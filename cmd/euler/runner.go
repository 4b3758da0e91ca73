package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/govalues/bignum/internal/problems"
)

var (
	runCommand = &cli.Command{
		Action:    solveSome,
		Name:      "run",
		Usage:     "Solve the given problems concurrently",
		ArgsUsage: "<problem> [<problem>...]",
	}
	allCommand = &cli.Command{
		Action:    solveAll,
		Name:      "all",
		Usage:     "Solve every known problem",
		ArgsUsage: " ",
	}
	listCommand = &cli.Command{
		Action:    listProblems,
		Name:      "list",
		Usage:     "List known problems",
		ArgsUsage: " ",
	}
)

// runner holds everything an action needs.
type runner struct {
	cfg    Config
	log    *logrus.Logger
	env    *problems.Env
	out    io.Writer
	answer *color.Color
}

// result is a solved problem.
type result struct {
	problem problems.Problem
	answer  string
	elapsed time.Duration
}

// newRunner configures logging and output for the current invocation.
func newRunner(ctx *cli.Context) (*runner, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return nil, err
	}
	level, _ := logrus.ParseLevel(cfg.Verbosity) // validated by makeConfig

	errOut := ctx.App.ErrWriter
	useColor := colorEnabled(cfg.Color, errOut)
	if f, ok := errOut.(*os.File); ok && useColor {
		errOut = colorable.NewColorable(f)
	}
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   useColor,
		DisableColors: !useColor,
		FullTimestamp: true,
	})

	answer := color.New(color.FgGreen, color.Bold)
	if colorEnabled(cfg.Color, ctx.App.Writer) {
		answer.EnableColor()
	} else {
		answer.DisableColor()
	}

	log.WithFields(logrus.Fields{
		"jobs":  cfg.Jobs,
		"cache": cfg.CacheBytes,
	}).Debug("Runner configured")

	return &runner{
		cfg:    cfg,
		log:    log,
		env:    problems.NewEnv(cfg.CacheBytes),
		out:    ctx.App.Writer,
		answer: answer,
	}, nil
}

// colorEnabled decides whether w should receive terminal colors.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// lookup resolves problem selectors to registered problems.
func lookup(selectors []string) ([]problems.Problem, error) {
	ps := make([]problems.Problem, 0, len(selectors))
	for _, s := range selectors {
		id, err := problems.Normalize(s)
		if err != nil {
			return nil, err
		}
		p, err := problems.Lookup(id)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// solve runs the given problems, at most cfg.Jobs at a time.
// The first failure cancels the remaining problems.
// Results are returned in the order of ps.
func (r *runner) solve(ctx context.Context, ps []problems.Problem) ([]result, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Jobs)

	results := make([]result, len(ps))
	for i, p := range ps {
		i, p := i, p
		g.Go(func() error {
			log := r.log.WithField("problem", p.ID)
			log.Debug("Solving problem")
			start := time.Now()
			answer, err := p.Solve(ctx, r.env)
			if err != nil {
				log.WithError(err).Error("Failed to solve problem")
				return fmt.Errorf("solving %v: %w", p.ID, err)
			}
			elapsed := time.Since(start)
			log.WithField("elapsed", elapsed).Info("Solved problem")
			results[i] = result{problem: p, answer: answer, elapsed: elapsed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := r.env.Powers.Stats()
	r.log.WithFields(logrus.Fields{
		"hits":    s.Hits,
		"misses":  s.Misses,
		"entries": s.Entries,
	}).Debug("Power cache usage")
	return results, nil
}

func (r *runner) print(results []result) {
	for _, res := range results {
		fmt.Fprintf(r.out, "%v  %v\n", res.problem.ID, r.answer.Sprint(res.answer))
	}
}

// solveOne is the default action: exactly one problem, answer only.
func solveOne(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("usage: %v <problem>", clientIdentifier)
	}
	ps, err := lookup(ctx.Args().Slice())
	if err != nil {
		return err
	}
	r, err := newRunner(ctx)
	if err != nil {
		return err
	}
	results, err := r.solve(ctx.Context, ps)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, r.answer.Sprint(results[0].answer))
	return nil
}

func solveSome(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("usage: %v run <problem> [<problem>...]", clientIdentifier)
	}
	ps, err := lookup(ctx.Args().Slice())
	if err != nil {
		return err
	}
	r, err := newRunner(ctx)
	if err != nil {
		return err
	}
	results, err := r.solve(ctx.Context, ps)
	if err != nil {
		return err
	}
	r.print(results)
	return nil
}

func solveAll(ctx *cli.Context) error {
	r, err := newRunner(ctx)
	if err != nil {
		return err
	}
	results, err := r.solve(ctx.Context, problems.All())
	if err != nil {
		return err
	}
	r.print(results)
	return nil
}

func listProblems(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"ID", "Title"})
	table.SetAutoWrapText(false)
	for _, p := range problems.All() {
		table.Append([]string{p.ID, p.Title})
	}
	table.Render()
	return nil
}
