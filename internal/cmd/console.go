package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"reelview/internal/core"
	"reelview/internal/detail"
	"reelview/internal/forwarder"
	"reelview/internal/metrics"
	"reelview/internal/nats"
	"reelview/internal/playback"
	"reelview/internal/remote"
	"reelview/internal/session"

	"github.com/samber/lo"
)

// console is the text front-end of a detail view: every stdin line is an
// intent, the view is printed after each of them.
type console struct {
	Logger    *slog.Logger
	Target    *ViewTarget
	Service   *remote.Service
	Session   *session.Env
	NATS      *nats.NATS
	Forwarder *forwarder.Forwarder
	Metrics   *metrics.HTTPServer

	in io.Reader

	mu  sync.Mutex
	out io.Writer
}

func (c *console) Init(_ context.Context) error {
	c.Logger = c.Logger.With("component", "cmd.console")
	c.in = os.Stdin
	c.out = os.Stdout

	c.Metrics.AddCheck(c.NATS)

	return nil
}

func (c *console) Run(ctx context.Context) error {
	view, err := detail.Open(ctx, detail.Deps{
		Logger:    c.Logger,
		Service:   c.Service,
		Session:   c.Session,
		Forwarder: c.Forwarder,
		NewPlayer: func(videoURL string) core.Player {
			return playback.NewLogPlayer(c.Logger, videoURL)
		},
	}, c.Target.PostID)
	if err != nil {
		return err
	}
	defer view.Close()

	return c.loop(ctx, view)
}

func (c *console) loop(ctx context.Context, view *detail.View) error {
	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	c.render(view)

	for {
		select {
		case <-ctx.Done():
			return nil

		case line, ok := <-lines:
			if !ok {
				return nil
			}

			intent, err := detail.ParseIntent(line)
			if err != nil {
				c.println(err)
				continue
			}
			if intent.Kind == detail.IntentQuit {
				return nil
			}

			job := view.Dispatch(intent)
			go func() {
				if _, err := job.Wait(); err != nil && !errors.Is(err, context.Canceled) {
					c.println("!", err)
				}
				c.render(view)
			}()
		}
	}
}

func (c *console) println(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out, a...)
}

func (c *console) render(view *detail.View) {
	state := view.Render()

	c.mu.Lock()
	defer c.mu.Unlock()

	render(c.out, state)
}

func render(w io.Writer, state detail.RenderState) {
	if state.Empty {
		fmt.Fprintln(w, "(post not found)")
		return
	}

	post := state.Post

	var b strings.Builder

	author := post.Author.Name
	if post.Author.Verified {
		author += " ✓"
	}
	fmt.Fprintf(&b, "%s\n%s\n", author, post.Caption)
	fmt.Fprintf(&b, "video: %s [%s]", post.VideoURL, lo.Ternary(state.Playback.Playing, "playing", "paused"))
	if state.Affordances.ShowPlayPause {
		fmt.Fprintf(&b, " (%s)", state.Affordances.PlayPause)
	}
	fmt.Fprintf(&b, " (%s)\n", state.Affordances.Mute)

	if state.SignedIn {
		fmt.Fprintf(&b, "likes: %d%s\n", state.LikeCount, lo.Ternary(state.LikedByViewer, " (liked)", ""))
	}

	fmt.Fprintf(&b, "comments (%d):\n", len(post.Comments))
	for _, comment := range post.Comments {
		fmt.Fprintf(&b, "  %s: %s\n", comment.Author, comment.Text)
	}

	if state.PostingComment {
		b.WriteString("posting comment...\n")
	} else if state.Draft != "" {
		fmt.Fprintf(&b, "draft: %s\n", state.Draft)
	}

	if state.Err != nil {
		fmt.Fprintf(&b, "error: %s (retry the action)\n", state.Err)
	}

	fmt.Fprint(w, b.String())
}
