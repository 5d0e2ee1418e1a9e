package config

import "time"

type Config struct {
	APIURL      string        `flag:"api-url"`
	Timeout     time.Duration `flag:"timeout"`
	LogLevel    string        `flag:"log-level"`
	NATSURL     string        `flag:"nats-url"`
	NATSInit    bool          `flag:"nats-init"`
	MetricsAddr string        `flag:"metrics-addr"`
}
