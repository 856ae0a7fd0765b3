// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/memoctlgo/internal/fibs"
	"github.com/staranto/memoctlgo/internal/meta"
	"github.com/staranto/memoctlgo/internal/store"
)

// FibCommandAction is the action handler for the "fib" subcommand. Each
// positional arg is an index N or an inclusive range N..M. Indexes already
// present in the persistent store are seeded instead of recomputed.
func FibCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner{
		CommandName:  "fib",
		DefaultAttrs: []string{"n", "value", "cached", "computes"},
		FetchFn:      fetchFibs,
	}
	return runner.Run(ctx, cmd)
}

func fetchFibs(ctx context.Context, cmd *cli.Command) ([]map[string]interface{}, error) {
	indexes, err := parseIndexArgs(cmd.Args().Slice())
	if err != nil {
		return nil, err
	}
	if len(indexes) == 0 {
		return nil, fmt.Errorf("at least one index or range (N or N..M) is required")
	}

	st, err := openStore(ctx, cmd)
	if err != nil {
		return nil, err
	}

	calc := fibs.New()

	// Seed anything the store already knows before computing.
	if st != nil {
		for _, n := range indexes {
			data, ok, readErr := st.Read(ctx, storeKey("fib", n))
			if readErr != nil {
				log.Warnf("store read failed for fib(%d): %v", n, readErr)
				continue
			}
			if !ok {
				continue
			}
			v, parseErr := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
			if parseErr != nil {
				log.Warnf("ignoring bad store entry for fib(%d): %v", n, parseErr)
				continue
			}
			calc.Seed(n, v)
		}
	}

	dataset := make([]map[string]interface{}, 0, len(indexes))
	for _, n := range indexes {
		cached := calc.Cached(n)
		before := calc.Computes()

		v, err := calc.Fib(n)
		if err != nil {
			return nil, err
		}

		dataset = append(dataset, map[string]interface{}{
			"n":        n,
			"value":    v,
			"cached":   cached,
			"computes": calc.Computes() - before,
		})

		if st != nil && !cached {
			if err := st.Write(ctx, storeKey("fib", n), []byte(strconv.FormatUint(v, 10))); err != nil {
				log.Warnf("store write failed for fib(%d): %v", n, err)
			}
		}
	}

	log.Debugf("stats: %+v computes: %d", calc.Stats(), calc.Computes())
	return dataset, nil
}

// FibCommandBuilder constructs the cli.Command for "fib".
func FibCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	qcb := &QueryCommandBuilder{
		Name:      "fib",
		Usage:     "memoized Fibonacci numbers",
		UsageText: `memoctl fib N [N..M ...] [options]`,
		Flags: []cli.Flag{
			NewPersistFlag("fib"),
		},
		Action: FibCommandAction,
		Meta:   meta,
	}
	return qcb.Build()
}

// parseIndexArgs expands args of the form "N" and "N..M" into a flat list
// of indexes, preserving argument order.
func parseIndexArgs(args []string) ([]int, error) {
	var indexes []int
	for _, arg := range args {
		lo, hi, found := strings.Cut(arg, "..")
		if !found {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid index %q", arg)
			}
			indexes = append(indexes, n)
			continue
		}

		from, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q", arg)
		}
		to, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q", arg)
		}
		if to < from {
			return nil, fmt.Errorf("range %q is backwards", arg)
		}
		for n := from; n <= to; n++ {
			indexes = append(indexes, n)
		}
	}
	return indexes, nil
}

// openStore resolves the --persist flag into a Store, or nil when
// persistence was not requested.
func openStore(ctx context.Context, cmd *cli.Command) (store.Store, error) {
	target := cmd.String("persist")
	if target == "" {
		return nil, nil
	}
	if target == "default" {
		target = ""
	}
	return store.New(ctx, target)
}

func storeKey(kind string, n int) string {
	return fmt.Sprintf("%s.%d", kind, n)
}
