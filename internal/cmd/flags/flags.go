package flags

import (
	"fmt"
	"slices"
	"time"

	"reelview/pkg/reelapi"

	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var APIURL = &cli.StringFlag{
	Name:    "api-url",
	Aliases: []string{"a"},
	Usage:   "The base URL of the post API",
	Value:   reelapi.DefaultConfig.BaseURL,
	Sources: cli.EnvVars("REELVIEW_API_URL"),
}

var Timeout = &cli.DurationFlag{
	Name:    "timeout",
	Aliases: []string{"t"},
	Usage:   "Timeout of a single post API request",
	Value:   10 * time.Second,
	Sources: cli.EnvVars("REELVIEW_TIMEOUT"),
}

var NATSURL = &cli.StringFlag{
	Name:    "nats-url",
	Aliases: []string{"n"},
	Usage:   "The URL of the NATS server confirmed interactions are published to, disabled when empty",
	Sources: cli.EnvVars("NATS_URL"),
}

var InitNATS = &cli.BoolFlag{
	Name:        "nats-init",
	Aliases:     []string{"i"},
	Usage:       "Initialize the NATS server: create the interactions stream",
	DefaultText: "false",
	Value:       false,
	Sources:     cli.EnvVars("NATS_INIT"),
}

var MetricsAddr = &cli.StringFlag{
	Name:    "metrics-addr",
	Aliases: []string{"m"},
	Usage:   "Address of the metrics and health endpoints, disabled when empty",
	Sources: cli.EnvVars("METRICS_ADDR"),
}

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}
