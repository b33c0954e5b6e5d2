package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/leonardotrapani/hyprcaption/internal/caption"
	"github.com/leonardotrapani/hyprcaption/internal/config"
)

// ConfigureResult holds the configuration result from the form
type ConfigureResult struct {
	Config    *config.Config
	Cancelled bool
}

// configureFields are the form values as edited text.
type configureFields struct {
	host           string
	path           string
	secure         bool
	reconnectDelay string
	showPartial    bool
	fontSize       string
	theme          string
}

func fieldsFrom(cfg *config.Config) *configureFields {
	return &configureFields{
		host:           cfg.Stream.Host,
		path:           cfg.Stream.Path,
		secure:         cfg.Stream.Secure,
		reconnectDelay: cfg.Stream.ReconnectDelay.String(),
		showPartial:    cfg.Display.ShowPartial,
		fontSize:       strconv.Itoa(cfg.Display.FontSize),
		theme:          cfg.Display.Theme,
	}
}

// apply copies the edited values onto a copy of base.
func (f *configureFields) apply(base *config.Config) (*config.Config, error) {
	out := *base
	out.Stream.Host = strings.TrimSpace(f.host)
	out.Stream.Path = strings.TrimSpace(f.path)
	out.Stream.Secure = f.secure
	out.Display.ShowPartial = f.showPartial
	out.Display.Theme = f.theme

	delay, err := time.ParseDuration(strings.TrimSpace(f.reconnectDelay))
	if err != nil {
		return nil, fmt.Errorf("reconnect delay: %w", err)
	}
	out.Stream.ReconnectDelay = delay

	size, err := strconv.Atoi(strings.TrimSpace(f.fontSize))
	if err != nil {
		return nil, fmt.Errorf("font size: %w", err)
	}
	out.Display.FontSize = size

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func validateHost(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("host is required")
	}
	if strings.Contains(s, "/") {
		return errors.New("use host:port without scheme or path")
	}
	return nil
}

func validatePath(s string) error {
	if !strings.HasPrefix(strings.TrimSpace(s), "/") {
		return errors.New("path must start with /")
	}
	return nil
}

func validateDelay(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return errors.New("use a duration like 1.5s or 500ms")
	}
	if d <= 0 {
		return errors.New("delay must be positive")
	}
	return nil
}

func validateFontSize(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a number")
	}
	if n < caption.MinFontSize || n > caption.MaxFontSize {
		return fmt.Errorf("must be between %d and %d", caption.MinFontSize, caption.MaxFontSize)
	}
	return nil
}

func newConfigureForm(f *configureFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Caption server").
				Description("host:port serving the caption WebSocket").
				Value(&f.host).
				Validate(validateHost),
			huh.NewInput().
				Title("Socket path").
				Value(&f.path).
				Validate(validatePath),
			huh.NewConfirm().
				Title("Use TLS (wss://)?").
				Value(&f.secure),
			huh.NewInput().
				Title("Reconnect delay").
				Description("Pause before reconnecting after the connection drops").
				Value(&f.reconnectDelay).
				Validate(validateDelay),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show partial captions?").
				Value(&f.showPartial),
			huh.NewInput().
				Title("Font size").
				Description("Final line size; partial and translation sizes follow").
				Value(&f.fontSize).
				Validate(validateFontSize),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", config.ThemeDark),
					huh.NewOption("Light", config.ThemeLight),
					huh.NewOption("Follow terminal", config.ThemeAuto),
				).
				Value(&f.theme),
		),
	).WithTheme(getTheme())
}

// RunConfigure shows the settings form for cfg.
func RunConfigure(cfg *config.Config) (*ConfigureResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	clearScreen()
	fmt.Println(StyleHeader.Render("hyprcaption settings"))

	fields := fieldsFrom(cfg)
	if err := newConfigureForm(fields).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return &ConfigureResult{Config: cfg, Cancelled: true}, nil
		}
		return &ConfigureResult{Cancelled: true}, err
	}

	updated, err := fields.apply(cfg)
	if err != nil {
		return &ConfigureResult{Cancelled: true}, err
	}
	return &ConfigureResult{Config: updated}, nil
}

// clearScreen clears the terminal screen
func clearScreen() {
	output := termenv.NewOutput(os.Stdout)
	output.ClearScreen()
}

func getTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(DarkPalette.Primary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(DarkPalette.Muted)
	t.Focused.Base = lipgloss.NewStyle().BorderForeground(DarkPalette.Primary)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(DarkPalette.Secondary)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(DarkPalette.Text)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(DarkPalette.Muted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(DarkPalette.Subtle)

	return t
}
