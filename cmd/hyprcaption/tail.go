package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/leonardotrapani/hyprcaption/internal/caption"
	"github.com/leonardotrapani/hyprcaption/internal/config"
	"github.com/leonardotrapani/hyprcaption/internal/stream"
)

// runTail prints every history entry as it is appended. Languages listed
// in hide are switched off the moment they are first seen.
func runTail(ctx context.Context, cfg *config.Config, hide []string, out io.Writer) error {
	session := caption.NewSession(false)

	client := stream.NewClient(cfg.ToStreamConfig(), stream.HandlerFunc(func(ev caption.Event) {
		u := session.Apply(ev)
		for _, code := range u.Registered {
			if slices.Contains(hide, code) && session.IsVisible(code) {
				session.SetVisible(code, false)
				log.Printf("tail: hiding %s", code)
			}
		}
		if u.Appended != nil {
			printEntry(out, session.Render(*u.Appended))
		}
	}))

	err := client.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printEntry(w io.Writer, e caption.RenderedEntry) {
	if e.Speaker != "" {
		fmt.Fprintf(w, "[%s] %s\n", e.Speaker, e.Text)
	} else {
		fmt.Fprintln(w, e.Text)
	}
	for _, l := range e.Lines {
		fmt.Fprintf(w, "    %s: %s\n", l.Label, l.Text)
	}
}
