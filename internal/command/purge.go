// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/memoctlgo/internal/cachedir"
	"github.com/staranto/memoctlgo/internal/meta"
)

// PurgeCommandAction is the action handler for the "purge" subcommand. It
// removes disk cache entries older than --hours.
func PurgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "purge") {
		return nil
	}

	hours := cmd.Int("hours")
	log.Debugf("purging cache entries older than %dh", hours)

	return cachedir.Purge(hours)
}

// PurgeCommandBuilder constructs the cli.Command for "purge".
func PurgeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "purge",
		Usage:     "purge aged disk cache entries",
		UsageText: `memoctl purge [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "hours",
				Usage: "remove entries older than this many hours",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("purge.hours", altsrc.StringSourcer(cfg.Source)),
					yaml.YAML("cache.hours", altsrc.StringSourcer(cfg.Source)),
				),
				Value: 24, //nolint:mnd
			},
			tldrFlag,
		},
		Action: PurgeCommandAction,
	}
}
