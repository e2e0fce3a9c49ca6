package main

import (
	"context"
	"fmt"
	"io"
	"os"

	stderr "github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/suzuneyagi/bsts-lab/concurrent"
	"github.com/suzuneyagi/bsts-lab/config"
	errs "github.com/suzuneyagi/bsts-lab/errors"
	"github.com/suzuneyagi/bsts-lab/logs"
)

const stdinName = "-"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderrW io.Writer) error {
	cfg := &SortConfig{}
	parser, err := config.Generate("bstsort", cfg)
	if err != nil {
		fmt.Fprintln(stderrW, err)
		return err
	}

	if err := parser.Parse(args); err != nil {
		if stderr.Is(err, pflag.ErrHelp) {
			return nil
		}

		fmt.Fprintln(stderrW, err)
		return err
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Prefix:    "bstsort",
		Level:     cfg.LogLevel,
		Output:    stderrW,
		Formatter: cfg.LogFormat,
	})

	inputs := parser.Args()
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	logger.Debug(ctx, "sorting inputs", logs.MapFields{
		"inputs":      len(inputs),
		"type":        cfg.Type,
		"iterative":   cfg.Iterative,
		"concurrency": cfg.Concurrency,
		"config_file": parser.ConfigFile(),
	})

	suppliers := make([]concurrent.Supplier[sorted], 0, len(inputs))
	for i, input := range inputs {
		suppliers = append(suppliers, newSortSupplier(
			logs.WithTraceID(ctx, int64(i+1)), logger, cfg, input, stdin))
	}

	results := concurrent.BatchSliceWithOpts(ctx, suppliers, concurrent.BatchOpts{
		Concurrency: cfg.Concurrency,
	})

	var failed error
	for i, res := range results {
		if err := res.Err(); err != nil {
			fields := logs.MapFields{"input": inputs[i]}
			var e *errs.Error
			if stderr.As(err, &e) {
				e.Log(fields)
			} else {
				fields.Add("err", err.Error())
			}

			logger.Error(logs.WithTraceID(ctx, int64(i+1)), "failed to sort input", fields)
			failed = err
			continue
		}

		fmt.Fprintln(stdout, res.Value().Line)
	}

	return failed
}

func newSortSupplier(
	ctx context.Context,
	logger logs.Logger,
	cfg *SortConfig,
	input string,
	stdin io.Reader,
) concurrent.Supplier[sorted] {
	return concurrent.SupplierFunc[sorted](func() (sorted, error) {
		r := stdin
		if input != stdinName {
			file, err := os.Open(input)
			if err != nil {
				return sorted{}, errs.New(errs.ErrCodeReadInput, "failed to open %s: %s", input, err.Error())
			}
			defer file.Close()
			r = file
		}

		res, err := sortInput(r, cfg.Type, cfg.Iterative)
		if err != nil {
			return sorted{}, stderr.Wrapf(err, "failed to sort %s", input)
		}

		logger.Debug(ctx, "sorted input", logs.MapFields{
			"input":  input,
			"count":  res.Count,
			"height": res.Height,
		})

		return res, nil
	})
}
