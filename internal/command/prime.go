// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/memoctlgo/internal/meta"
	"github.com/staranto/memoctlgo/internal/primes"
)

// PrimeCommandAction is the action handler for the "prime" subcommand.
// Each positional arg is a digit count or an inclusive range D..E. A
// persisted prime for a digit count wins over fresh generation so repeat
// runs stay stable.
func PrimeCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner{
		CommandName:  "prime",
		DefaultAttrs: []string{"digits", "value", "cached"},
		FetchFn:      fetchPrimes,
	}
	return runner.Run(ctx, cmd)
}

func fetchPrimes(ctx context.Context, cmd *cli.Command) ([]map[string]interface{}, error) {
	counts, err := parseIndexArgs(cmd.Args().Slice())
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("at least one digit count or range (D or D..E) is required")
	}

	st, err := openStore(ctx, cmd)
	if err != nil {
		return nil, err
	}

	src := primes.New()

	if st != nil {
		for _, d := range counts {
			data, ok, readErr := st.Read(ctx, storeKey("prime", d))
			if readErr != nil {
				log.Warnf("store read failed for prime(%d): %v", d, readErr)
				continue
			}
			if !ok {
				continue
			}
			p, good := new(big.Int).SetString(strings.TrimSpace(string(data)), 10)
			if !good || primes.Digits(p) != d {
				log.Warnf("ignoring bad store entry for prime(%d)", d)
				continue
			}
			src.Seed(d, p)
		}
	}

	dataset := make([]map[string]interface{}, 0, len(counts))
	for _, d := range counts {
		cached := src.Cached(d)

		p, err := src.Of(d)
		if err != nil {
			return nil, err
		}

		dataset = append(dataset, map[string]interface{}{
			"digits": d,
			"value":  p.Text(10),
			"cached": cached,
		})

		if st != nil && !cached {
			if err := st.Write(ctx, storeKey("prime", d), []byte(p.Text(10))); err != nil {
				log.Warnf("store write failed for prime(%d): %v", d, err)
			}
		}
	}

	return dataset, nil
}

// PrimeCommandBuilder constructs the cli.Command for "prime".
func PrimeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	qcb := &QueryCommandBuilder{
		Name:      "prime",
		Usage:     "probable primes by digit count",
		UsageText: `memoctl prime DIGITS [D..E ...] [options]`,
		Flags: []cli.Flag{
			NewPersistFlag("prime"),
		},
		Action: PrimeCommandAction,
		Meta:   meta,
	}
	return qcb.Build()
}
