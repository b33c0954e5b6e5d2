// Package stream keeps a caption WebSocket connection alive and feeds its
// events to a handler.
package stream

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/leonardotrapani/hyprcaption/internal/caption"
)

// Handler receives decoded events in arrival order, one at a time.
type Handler interface {
	HandleEvent(caption.Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(caption.Event)

func (f HandlerFunc) HandleEvent(ev caption.Event) { f(ev) }

// Config configures a Client
type Config struct {
	URL               string
	ReconnectDelay    time.Duration
	MaxReconnectDelay time.Duration // 0 keeps ReconnectDelay constant
	Jitter            bool
	HandshakeTimeout  time.Duration
	// ReadLimit caps frame size in bytes, 0 for no limit. A larger frame
	// ends the connection and triggers a reconnect.
	ReadLimit         int64
}

// Stats counts what the client has seen since it started.
type Stats struct {
	Connects int64
	Frames   int64
	Dropped  int64 // frames that failed to decode
	Ignored  int64 // frames with an unknown type
}

// Client is a receive-only caption stream. It reconnects after every close
// or failed dial and never gives up; only its context stops it.
type Client struct {
	url       string
	backoff   Backoff
	dialer    *websocket.Dialer
	readLimit int64
	handler   Handler

	connects atomic.Int64
	frames   atomic.Int64
	dropped  atomic.Int64
	ignored  atomic.Int64
}

func NewClient(cfg Config, h Handler) *Client {
	dialer := *websocket.DefaultDialer
	if cfg.HandshakeTimeout > 0 {
		dialer.HandshakeTimeout = cfg.HandshakeTimeout
	}
	return &Client{
		url: cfg.URL,
		backoff: Backoff{
			Delay:    cfg.ReconnectDelay,
			MaxDelay: cfg.MaxReconnectDelay,
			Jitter:   cfg.Jitter,
		},
		dialer:    &dialer,
		readLimit: cfg.ReadLimit,
		handler:   h,
	}
}

// Run connects and keeps reconnecting until ctx is cancelled, then returns
// ctx.Err().
func (c *Client) Run(ctx context.Context) error {
	attempt := 0
	for {
		connected, err := c.runOnce(ctx)
		if ctx.Err() != nil {
			log.Printf("stream: stopped")
			return ctx.Err()
		}
		if connected {
			attempt = 0
		}

		delay := c.backoff.Next(attempt)
		attempt++
		log.Printf("stream: closed (%v), retrying in %v", err, delay)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Printf("stream: stopped")
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// runOnce dials and reads until the connection ends. It reports whether
// the dial succeeded along with the error that ended the attempt.
func (c *Client) runOnce(ctx context.Context) (bool, error) {
	log.Printf("stream: connecting to %s", c.url)
	conn, resp, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		if resp != nil {
			log.Printf("stream: dial failed with status %d", resp.StatusCode)
		}
		return false, fmt.Errorf("websocket dial: %w", err)
	}
	defer conn.Close()

	c.connects.Add(1)
	log.Printf("stream: connected to %s", c.url)

	if c.readLimit > 0 {
		conn.SetReadLimit(c.readLimit)
	}

	// unblock ReadMessage on shutdown
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return true, fmt.Errorf("websocket read: %w", err)
		}
		c.frames.Add(1)

		if msgType != websocket.TextMessage {
			c.dropped.Add(1)
			log.Printf("stream: dropping bad frame: unexpected message type %d", msgType)
			continue
		}
		c.dispatch(data)
	}
}

func (c *Client) dispatch(frame []byte) {
	ev, err := caption.Decode(frame)
	if err != nil {
		c.dropped.Add(1)
		log.Printf("stream: dropping bad frame: %v", err)
		return
	}
	if ev.Kind == caption.KindUnknown {
		c.ignored.Add(1)
		return
	}
	c.handler.HandleEvent(ev)
}

func (c *Client) Stats() Stats {
	return Stats{
		Connects: c.connects.Load(),
		Frames:   c.frames.Load(),
		Dropped:  c.dropped.Load(),
		Ignored:  c.ignored.Load(),
	}
}
