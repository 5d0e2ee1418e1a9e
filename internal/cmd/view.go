package cmd

import (
	"context"
	"errors"

	"reelview/internal/cmd/flags"
	"reelview/internal/forwarder"
	"reelview/internal/metrics"
	"reelview/internal/nats"
	"reelview/internal/remote"
	"reelview/internal/session"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var errPostIDRequired = errors.New("post id is required")

var viewCmd = &cli.Command{
	Name:      "view",
	Usage:     "Open the detail view of a post and drive it from the console",
	ArgsUsage: "<post-id>",
	Flags: []cli.Flag{
		flags.NATSURL,
		flags.InitNATS,
		flags.MetricsAddr,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		postID := c.Args().First()
		if postID == "" {
			return errPostIDRequired
		}

		cfg, err := parseConfig(c)
		if err != nil {
			return err
		}

		return run(ctx, cfg,
			pal.Provide(&ViewTarget{PostID: postID}),
			pal.Provide(&remote.Service{}),
			pal.Provide(&session.Env{}),
			pal.Provide(&nats.NATS{}),
			pal.Provide(&forwarder.Forwarder{}),
			pal.Provide(&metrics.HTTPServer{}),
			pal.Provide(&console{}),
		)
	},
}

// ViewTarget carries the command line arguments of the view command.
type ViewTarget struct {
	PostID string
}
