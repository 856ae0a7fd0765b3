// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/staranto/memoctlgo/internal/attrs"
	"github.com/staranto/memoctlgo/internal/filters"
	"github.com/staranto/memoctlgo/internal/meta"
	"github.com/staranto/memoctlgo/internal/output"
	"github.com/staranto/memoctlgo/seq"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr memoctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "memoctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ApplyFilters keeps only the rows matching the --filter spec. An empty
// spec passes everything through untouched.
func ApplyFilters(dataset []map[string]interface{}, spec string) []map[string]interface{} {
	fs := filters.BuildFilters(spec)
	if len(fs) == 0 {
		return dataset
	}
	return seq.RemoveIf(dataset, func(row map[string]interface{}) bool {
		raw, err := json.Marshal(row)
		if err != nil {
			return true
		}
		return !filters.Matches(gjson.ParseBytes(raw), fs)
	})
}

// QueryCommandBuilder constructs a cli.Command for row-producing
// subcommands using a consistent pattern. The builder wires metadata, the
// tldr flag, the global flags, and the before-validator.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: append(qcb.Flags, append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags(qcb.Name)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}

// QueryActionRunner encapsulates the common action pattern: resolve meta,
// honor --tldr, build attrs, fetch rows, filter, and emit. Commands supply
// only FetchFn.
type QueryActionRunner struct {
	CommandName  string
	DefaultAttrs []string
	FetchFn      func(context.Context, *cli.Command) ([]map[string]interface{}, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}

	al := BuildAttrs(cmd, qar.DefaultAttrs...)
	log.Debugf("attrs: %v", al)

	dataset, err := qar.FetchFn(ctx, cmd)
	if err != nil {
		return err
	}

	dataset = ApplyFilters(dataset, cmd.String("filter"))

	output.Spit(dataset, al, cmd, os.Stdout)
	return nil
}
