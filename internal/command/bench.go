// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/memoctlgo/internal/fibs"
	"github.com/staranto/memoctlgo/internal/meta"
)

// benchDefaultN keeps the naive recursion under a second or so.
const benchDefaultN = 30

// BenchCommandAction is the action handler for the "bench" subcommand. It
// computes fib(N) both memoized and naively and reports call counts and
// wall time for each.
func BenchCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner{
		CommandName:  "bench",
		DefaultAttrs: []string{"approach", "n", "value", "calls", "elapsed"},
		FetchFn:      fetchBench,
	}
	return runner.Run(ctx, cmd)
}

func fetchBench(_ context.Context, cmd *cli.Command) ([]map[string]interface{}, error) {
	n := benchDefaultN
	if arg := cmd.Args().First(); arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q", arg)
		}
		n = parsed
	}
	if n > fibs.MaxN {
		return nil, fmt.Errorf("index %d exceeds max %d", n, fibs.MaxN)
	}
	if n > cmd.Int("naive-max") {
		return nil, fmt.Errorf(
			"index %d exceeds --naive-max %d; the naive recursion would take too long",
			n, cmd.Int("naive-max"))
	}

	return benchRows(n)
}

func benchRows(n int) ([]map[string]interface{}, error) {
	calc := fibs.New()
	start := time.Now()
	memoized, err := calc.Fib(n)
	if err != nil {
		return nil, err
	}
	memoElapsed := time.Since(start)

	start = time.Now()
	naive, calls := fibs.Naive(n)
	naiveElapsed := time.Since(start)

	if memoized != naive {
		return nil, fmt.Errorf("memoized and naive disagree: %d vs %d", memoized, naive)
	}

	return []map[string]interface{}{
		{
			"approach": "memoized",
			"n":        n,
			"value":    memoized,
			"calls":    humanize.Comma(int64(calc.Computes())),
			"elapsed":  memoElapsed.String(),
		},
		{
			"approach": "naive",
			"n":        n,
			"value":    naive,
			"calls":    humanize.Comma(int64(calls)),
			"elapsed":  naiveElapsed.String(),
		},
	}, nil
}

// BenchCommandBuilder constructs the cli.Command for "bench".
func BenchCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	qcb := &QueryCommandBuilder{
		Name:      "bench",
		Usage:     "memoized vs naive Fibonacci",
		UsageText: `memoctl bench [N] [options]`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:   "naive-max",
				Hidden: true,
				Usage:  "largest index the naive recursion will attempt",
				Value:  45, //nolint:mnd
			},
		},
		Action: BenchCommandAction,
		Meta:   meta,
	}
	return qcb.Build()
}
