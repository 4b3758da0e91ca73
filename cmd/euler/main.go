// Command euler prints answers to Project Euler problems.
//
// Usage:
//
//	euler [global options] <problem>
//	euler [global options] run <problem> [<problem>...]
//	euler [global options] all
//	euler list
//
// A problem is selected either by its number (31) or its identifier (p0031).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.uber.org/automaxprocs/maxprocs"
)

const clientIdentifier = "euler"

// Version is set by the linker.
var Version = "dev"

var (
	configFileFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "TOML configuration file",
		EnvVars: []string{"EULER_CONFIG"},
	}
	verbosityFlag = &cli.StringFlag{
		Name:    "verbosity",
		Usage:   "Logging verbosity: panic, fatal, error, warn, info, debug, trace",
		Value:   logrus.InfoLevel.String(),
		EnvVars: []string{"EULER_VERBOSITY"},
	}
	jobsFlag = &cli.IntFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "Number of problems solved concurrently (default: GOMAXPROCS)",
		EnvVars: []string{"EULER_JOBS"},
	}
	colorFlag = &cli.StringFlag{
		Name:    "color",
		Usage:   "Colorize output: auto, always, never",
		Value:   colorAuto,
		EnvVars: []string{"EULER_COLOR"},
	}
	cacheFlag = &cli.IntFlag{
		Name:    "cache",
		Usage:   "Capacity of the power cache in bytes",
		EnvVars: []string{"EULER_CACHE"},
	}
)

// newApp creates the command line application writing answers to out
// and logs to errOut.
func newApp(out, errOut io.Writer) *cli.App {
	app := &cli.App{
		Name:      clientIdentifier,
		Usage:     "Project Euler solutions on arbitrary-precision decimals",
		Version:   Version,
		ArgsUsage: "<problem>",
		Writer:    out,
		ErrWriter: errOut,
		Action:    solveOne,
		Flags: []cli.Flag{
			configFileFlag,
			verbosityFlag,
			jobsFlag,
			colorFlag,
			cacheFlag,
		},
		Commands: []*cli.Command{
			runCommand,
			allCommand,
			listCommand,
			dumpConfigCommand,
		},
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Before = func(ctx *cli.Context) error {
		// Automatically set GOMAXPROCS to match Linux container CPU quota.
		_, err := maxprocs.Set(maxprocs.Logger(logrus.Debugf))
		return err
	}
	return app
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
