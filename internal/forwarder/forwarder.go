package forwarder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"reelview/internal/core"
	"reelview/internal/nats"

	libnats "github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const subjectPrefix = "reelview.interaction"

var (
	interactionsForwarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reelview_interactions_forwarded_total",
		Help: "The total number of confirmed interactions published to JetStream",
	}, []string{"kind"})
)

// Forwarder publishes confirmed interactions to JetStream. It is a no-op when
// NATS is disabled.
type Forwarder struct {
	Logger *slog.Logger
	NATS   *nats.NATS
}

func (f *Forwarder) Init(_ context.Context) error {
	f.Logger = f.Logger.With("component", "forwarder.Forwarder")
	return nil
}

func (f *Forwarder) Forward(ctx context.Context, interaction core.Interaction) error {
	if f.NATS == nil || !f.NATS.Enabled() {
		return nil
	}

	msg, err := Message(interaction)
	if err != nil {
		return err
	}

	if _, err := f.NATS.JS.PublishMsg(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", msg.Subject, err)
	}

	interactionsForwarded.WithLabelValues(string(interaction.Kind)).Inc()
	f.Logger.Debug("published interaction", "subject", msg.Subject, "post", interaction.PostID)

	return nil
}

// Message builds the JetStream message for an interaction.
func Message(interaction core.Interaction) (*libnats.Msg, error) {
	payload, err := json.Marshal(interaction)
	if err != nil {
		return nil, err
	}

	return &libnats.Msg{
		Subject: fmt.Sprintf("%s.%s", subjectPrefix, interaction.Kind),
		Data:    payload,
		Header: libnats.Header{
			libnats.MsgIdHdr: []string{messageID(interaction)},
		},
	}, nil
}

func messageID(interaction core.Interaction) string {
	return fmt.Sprintf("%s-%s-%s-%d", interaction.Kind, interaction.PostID, interaction.ViewerID, interaction.At.UnixMicro())
}
