// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/staranto/memoctlgo/internal/attrs"
	"github.com/staranto/memoctlgo/internal/driller"
	"github.com/staranto/memoctlgo/internal/fetch"
	"github.com/staranto/memoctlgo/internal/filters"
	"github.com/staranto/memoctlgo/internal/meta"
	"github.com/staranto/memoctlgo/internal/output"
	"github.com/staranto/memoctlgo/seq"
)

// MatchCommandAction is the action handler for the "match" subcommand. It
// reads a JSON array from a file, URL, or stdin, applies --filter
// predicates, and prints the first matching row (all of them with --all).
// No match is an error with exit code 2.
func MatchCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "match") {
		return nil
	}

	doc, err := readMatchInput(ctx, cmd)
	if err != nil {
		return err
	}

	parsed := gjson.ParseBytes(doc)
	if !parsed.IsArray() {
		return fmt.Errorf("input is not a JSON array")
	}
	rows := parsed.Array()
	log.Debugf("input rows: %d", len(rows))

	fs := filters.BuildFilters(cmd.String("filter"))

	var matched []gjson.Result
	if cmd.Bool("all") {
		matched = seq.RemoveIf(rows, func(r gjson.Result) bool {
			return !filters.Matches(r, fs)
		})
	} else {
		first, ok := seq.First(rows, func(r gjson.Result) bool {
			return filters.Matches(r, fs)
		})
		if ok {
			matched = append(matched, first)
		}
	}

	if len(matched) == 0 {
		return cli.Exit("no match", 2)
	}

	al := BuildAttrs(cmd)
	if len(al) == 0 {
		al = rowAttrs(matched[0])
	}

	dataset := make([]map[string]interface{}, 0, len(matched))
	for _, row := range matched {
		dataset = append(dataset, projectRow(row, al))
	}

	output.Spit(dataset, al, cmd, os.Stdout)
	return nil
}

// projectRow reduces a source row to the requested attrs, drilling dotted
// paths into the output keys.
func projectRow(row gjson.Result, al attrs.AttrList) map[string]interface{} {
	out := make(map[string]interface{}, len(al))
	for _, attr := range al {
		if attr.Key == "*" {
			continue
		}
		out[attr.OutputKey] = driller.Driller(row.Raw, attr.Key).Value()
	}
	return out
}

// rowAttrs derives an AttrList from a row's own top-level keys, in
// document order, for when the caller didn't ask for specific attrs.
func rowAttrs(row gjson.Result) (al attrs.AttrList) {
	row.ForEach(func(key, _ gjson.Result) bool {
		al = append(al, attrs.Attr{
			Key:       key.String(),
			Include:   true,
			OutputKey: key.String(),
		})
		return true
	})
	return
}

// readMatchInput resolves the positional arg to a document. http(s)
// targets go through the caching fetcher; "-" or no arg reads stdin.
func readMatchInput(ctx context.Context, cmd *cli.Command) ([]byte, error) {
	target := cmd.Args().First()

	switch {
	case target == "" || target == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	case strings.HasPrefix(target, "http://"), strings.HasPrefix(target, "https://"):
		doc, err := fetch.Hitter(ctx, target)
		if err != nil {
			return nil, err
		}
		return doc.Bytes(), nil
	default:
		data, err := os.ReadFile(target)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", target, err)
		}
		return data, nil
	}
}

// MatchCommandBuilder constructs the cli.Command for "match".
func MatchCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	qcb := &QueryCommandBuilder{
		Name:      "match",
		Usage:     "first row matching the filters",
		UsageText: `memoctl match [FILE|URL|-] [options]`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "emit every matching row, not just the first",
				Value: false,
			},
		},
		Action: MatchCommandAction,
		Meta:   meta,
	}
	return qcb.Build()
}
