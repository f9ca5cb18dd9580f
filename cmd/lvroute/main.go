// SPDX-License-Identifier: MIT

// Command lvroute solves and generates pickup routing instances.
//
//	lvroute [-config file] solve <instance>
//	lvroute [-config file] batch <instance>...
//	lvroute [-config file] generate -out <file> [-nodes n] [-friends m] [-alpha a] [-seed s]
//
// Reports are printed to stdout as YAML; logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/instance"
	"github.com/katalvlaran/lvroute/internal/batch"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/log"
	"github.com/katalvlaran/lvroute/internal/metrics"
	"gopkg.in/yaml.v3"
)

const usage = `usage:
  lvroute [-config file] solve <instance>
  lvroute [-config file] batch <instance>...
  lvroute [-config file] generate -out <file> [-nodes n] [-friends m] [-alpha a] [-seed s]
`

var errUsage = errors.New("invalid arguments")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "lvroute:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lvroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML or TOML config file")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	logger := log.NewLogger(cfg.Logging, stderr)

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "solve":
		if len(rest) != 1 {
			return errUsage
		}
		inst, err := instance.ReadFile(rest[0])
		if err != nil {
			return err
		}
		rep, err := batch.Solve(inst, cfg.Solver, logger)
		if err != nil {
			return err
		}
		rep.Path = rest[0]
		return printYAML(stdout, rep)

	case "batch":
		if len(rest) == 0 {
			return errUsage
		}
		res, err := batch.NewRunner(cfg, logger, metrics.New()).Run(ctx, rest)
		if perr := printYAML(stdout, res); perr != nil {
			return perr
		}
		if err != nil {
			return err
		}
		if n := res.Failed(); n > 0 {
			return fmt.Errorf("%d of %d instances failed", n, len(rest))
		}
		return nil

	case "generate":
		return generate(rest, cfg.Generate, stdout, stderr)

	default:
		return errUsage
	}
}

func generate(args []string, def config.Generate, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "", "output file (required)")
	nodes := fs.Int("nodes", def.Nodes, "vertex count")
	friends := fs.Int("friends", def.Friends, "friend count")
	alpha := fs.Float64("alpha", def.Alpha, "walking weight")
	seed := fs.Int64("seed", def.Seed, "random seed")
	if err := fs.Parse(args); err != nil || *out == "" || fs.NArg() != 0 {
		return errUsage
	}

	inst, err := builder.RandomInstance(*nodes, *friends, *alpha,
		builder.WithSeed(*seed), builder.WithMaxCoord(def.MaxCoord))
	if err != nil {
		return err
	}
	if err = instance.WriteFile(*out, inst); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "wrote %s: n=%d m=%d alpha=%s\n", *out, inst.Nodes, len(inst.Homes), instance.FormatAlpha(inst.Alpha))

	return err
}

func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
