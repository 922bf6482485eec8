package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/circuitstrategies/circuitbot/internal/dispatcher"
)

// ErrEmptyMessage is returned for blank input; the widget never sends it.
var ErrEmptyMessage = errors.New("empty message")

// Recorder receives every resolution outcome.
type Recorder interface {
	Record(ctx context.Context, channel string, res dispatcher.Result) error
}

// Gateway is the platform-agnostic entry point for chat surfaces. It adds
// the presentation delay and outcome recording around the dispatcher.
type Gateway struct {
	dispatcher *dispatcher.Dispatcher
	recorder   Recorder
	delay      time.Duration
}

// NewGateway creates a Gateway. recorder may be nil.
func NewGateway(d *dispatcher.Dispatcher, recorder Recorder, delay time.Duration) *Gateway {
	return &Gateway{
		dispatcher: d,
		recorder:   recorder,
		delay:      delay,
	}
}

// Dispatcher returns the dispatcher replies are resolved with.
func (g *Gateway) Dispatcher() *dispatcher.Dispatcher { return g.dispatcher }

// Delay returns the configured pause before each reply.
func (g *Gateway) Delay() time.Duration { return g.delay }

// Reply resolves a message after the presentation delay. The text is passed
// to the dispatcher unmodified.
func (g *Gateway) Reply(ctx context.Context, msg IncomingMessage) (*OutgoingMessage, error) {
	if strings.TrimSpace(msg.Text) == "" {
		return nil, ErrEmptyMessage
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	res := g.dispatcher.Match(msg.Text)

	if g.recorder != nil {
		if err := g.recorder.Record(ctx, string(msg.Channel), res); err != nil {
			log.Printf("chat: recording resolution: %v", err)
		}
	}

	return &OutgoingMessage{
		Text:  res.Response,
		Kind:  string(res.Kind),
		Topic: res.CategoryID,
	}, nil
}
