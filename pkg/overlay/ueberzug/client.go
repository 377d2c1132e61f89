// ABOUTME: Client streaming placement commands to a ueberzug child process
// ABOUTME: Implements overlay.Dispatcher; errgroup supervises wait and stderr drain

package ueberzug

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/ueberlay/internal/log"
	"github.com/mauromedda/ueberlay/pkg/overlay"
)

// DrawingMoment selects when the renderer repaints relative to a command batch.
type DrawingMoment int

const (
	// DrawSynchronous repaints once per commit: only the final command of a
	// batch carries the draw flag.
	DrawSynchronous DrawingMoment = iota
	// DrawAsynchronous lets the renderer repaint per command at its own
	// cadence: every command carries the draw flag.
	DrawAsynchronous
)

// Option configures a Client.
type Option func(*Client)

// WithDrawingMoment sets the repaint cadence. Default DrawSynchronous.
func WithDrawingMoment(m DrawingMoment) Option {
	return func(c *Client) { c.moment = m }
}

// WithScaler sets the scaler sent with every add command. Default
// ScalerContain.
func WithScaler(s string) Option {
	return func(c *Client) { c.scaler = s }
}

// WithBinary overrides the renderer binary name. Default "ueberzug".
func WithBinary(bin string) Option {
	return func(c *Client) { c.binary = bin }
}

// Client writes placement commands, one JSON line each, to an overlay
// renderer's command channel. It implements overlay.Dispatcher.
//
// The renderer acknowledges by not closing the channel: a write error is the
// failure signal, and the index of the failing command becomes the applied
// count so the registry retries the remainder.
type Client struct {
	w      io.Writer
	moment DrawingMoment
	scaler string
	binary string

	cancel context.CancelFunc
	stdin  io.Closer
	group  *errgroup.Group
}

// NewWriterClient wraps an arbitrary command channel writer. Used by tests
// and by hosts that manage the renderer process themselves.
func NewWriterClient(w io.Writer, opts ...Option) *Client {
	c := &Client{
		w:      w,
		scaler: ScalerContain,
		binary: "ueberzug",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Launch starts `<binary> layer --parser json --silent` and returns a client
// writing to its stdin. The child's stderr is drained into the debug log; its
// exit is collected by Close.
func Launch(ctx context.Context, opts ...Option) (*Client, error) {
	c := NewWriterClient(nil, opts...)

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, c.binary, "layer", "--parser", "json", "--silent")

	stdin, err := cmd.StdinPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("ueberzug: stdin pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("ueberzug: stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("ueberzug: starting %s: %w", c.binary, err)
	}

	g := &errgroup.Group{}
	g.Go(func() error {
		sc := bufio.NewScanner(stderr)
		for sc.Scan() {
			log.Debug("ueberzug: %s", sc.Text())
		}
		return nil
	})
	g.Go(func() error {
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("ueberzug: renderer exited: %w", err)
		}
		return nil
	})

	c.w = stdin
	c.stdin = stdin
	c.cancel = cancel
	c.group = g
	return c, nil
}

// Dispatch serializes ops in order onto the command channel. Returns the
// number of commands written; a mid-batch write error leaves the remainder
// unapplied for the caller to retry.
func (c *Client) Dispatch(ops []overlay.Op) (int, error) {
	for i, op := range ops {
		draw := c.moment == DrawAsynchronous || i == len(ops)-1
		line, err := commandFor(op, c.scaler, draw).MarshalJSON()
		if err != nil {
			return i, fmt.Errorf("ueberzug: encoding %s %s: %w", op.Kind, op.ID, err)
		}
		line = append(line, '\n')
		if _, err := c.w.Write(line); err != nil {
			return i, fmt.Errorf("ueberzug: writing %s %s: %w", op.Kind, op.ID, err)
		}
	}
	return len(ops), nil
}

// Close shuts the command channel and reaps the renderer process. Safe to
// call on writer-backed clients, where it is a no-op.
func (c *Client) Close() error {
	if c.stdin != nil {
		if err := c.stdin.Close(); err != nil {
			log.Debug("ueberzug: closing stdin: %v", err)
		}
	}
	var err error
	if c.group != nil {
		err = c.group.Wait()
	}
	if c.cancel != nil {
		c.cancel()
	}
	return err
}
