package ui

import (
	"context"
	"sync"
	"time"

	"dsaposter/internal/config"
	"dsaposter/internal/countdown"
	"dsaposter/internal/logging"
	"dsaposter/internal/poster"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// Messages
type (
	tickMsg       countdown.Update
	reloadMsg     struct{ cfg *config.Config }
	copyResultMsg struct{ ok bool }
	copyRevertMsg struct{ gen uint64 }
)

// Options configures a poster Model.
type Options struct {
	Config *config.Config
	Clock  countdown.Clock
	Copier *poster.Copier

	// Reloads, when set, delivers live config reloads.
	Reloads <-chan *config.Config
}

// Model is the bubbletea model of the poster.
type Model struct {
	cfg    *config.Config
	styles Styles
	keys   keyMap
	help   help.Model

	viewport viewport.Model
	renderer *glamour.TermRenderer
	width    int
	height   int
	ready    bool

	cards []poster.Card
	focus int
	done  poster.DoneState
	ack   *poster.Ack

	copier  *poster.Copier
	clock   countdown.Clock
	runners []*countdown.Runner
	updates chan countdown.Update
	reloads <-chan *config.Config

	ctx      context.Context
	cancel   context.CancelFunc
	shutdown *sync.Once
}

// New builds the poster and starts its countdowns.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	clock := opts.Clock
	if clock == nil {
		clock = countdown.SystemClock
	}
	copier := opts.Copier
	if copier == nil {
		copier = poster.NewCopier()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		keys:     defaultKeyMap(),
		help:     help.New(),
		ack:      &poster.Ack{},
		copier:   copier,
		clock:    clock,
		updates:  make(chan countdown.Update, 16),
		reloads:  opts.Reloads,
		ctx:      ctx,
		cancel:   cancel,
		shutdown: &sync.Once{},
	}
	m.apply(cfg)
	return m
}

// apply installs cfg: fresh cards, fresh countdowns. Previous countdowns
// are stopped first.
func (m *Model) apply(cfg *config.Config) {
	m.stopRunners()

	m.cfg = cfg
	m.styles = StylesFor(cfg.UI.DarkMode)
	m.renderer = m.newRenderer()
	m.cards = poster.Cards(cfg.Poster.Examples)
	if m.focus >= len(m.cards) {
		m.focus = 0
	}

	p := cfg.Poster
	m.runners = []*countdown.Runner{
		countdown.NewForTarget(poster.DeadlineLabel(p), p.Deadline, m.clock, countdown.WithListener(m.updates)),
		countdown.NewForTarget(poster.ExplainerLabel(p), p.Explainer, m.clock, countdown.WithListener(m.updates)),
	}
	if m.ctx.Err() == nil {
		for _, r := range m.runners {
			r.Start(m.ctx)
		}
	}
	logging.Get(logging.CategoryUI).Info("poster day %d: %d examples", p.Day, len(m.cards))
}

func (m *Model) stopRunners() {
	for _, r := range m.runners {
		r.Stop()
	}
	m.runners = nil
}

// Shutdown stops every countdown. Safe to call more than once.
func (m Model) Shutdown() {
	m.shutdown.Do(func() {
		m.stopRunners()
		m.cancel()
		close(m.updates)
	})
}

func (m Model) newRenderer() *glamour.TermRenderer {
	style := "light"
	if m.styles.Theme.IsDark {
		style = "dark"
	}
	width := 76
	if m.width > 0 {
		width = m.width - 8
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.Get(logging.CategoryUI).Warn("markdown renderer unavailable: %v", err)
		return nil
	}
	return r
}

// waitForUpdate listens for countdown ticks
func (m Model) waitForUpdate() tea.Cmd {
	ch := m.updates
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return tickMsg(u)
	}
}

// waitForReload listens for config reloads
func (m Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg{cfg: cfg}
	}
}

// Init starts the listeners.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForUpdate(), m.waitForReload())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.renderer = m.newRenderer()
		vh := msg.Height - blockHeight(m.helpView())
		if vh < 1 {
			vh = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vh)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vh
		}

	case tickMsg:
		cmds = append(cmds, m.waitForUpdate())

	case reloadMsg:
		logging.Get(logging.CategoryUI).Info("applying reloaded config")
		logging.Activity(logging.ActivityReload, "day", msg.cfg.Poster.Day)
		m.apply(msg.cfg)
		cmds = append(cmds, m.waitForReload())

	case copyResultMsg:
		logging.Activity(logging.ActivityShare, "copied", msg.ok)
		if msg.ok {
			gen := m.ack.Mark()
			cmds = append(cmds, tea.Tick(m.cfg.GetCopyAckWindow(), func(time.Time) tea.Msg {
				return copyRevertMsg{gen: gen}
			}))
		}

	case copyRevertMsg:
		m.ack.Revert(msg.gen)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Shutdown()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reveal):
			idx := int(msg.String()[0] - '1')
			if idx >= 0 && idx < len(m.cards) {
				m.focus = idx
				m.toggleCard(idx)
			}

		case key.Matches(msg, m.keys.Next):
			if len(m.cards) > 0 {
				m.focus = (m.focus + 1) % len(m.cards)
			}

		case key.Matches(msg, m.keys.Prev):
			if len(m.cards) > 0 {
				m.focus = (m.focus - 1 + len(m.cards)) % len(m.cards)
			}

		case key.Matches(msg, m.keys.Toggle):
			if m.focus < len(m.cards) {
				m.toggleCard(m.focus)
			}

		case key.Matches(msg, m.keys.Share):
			cmds = append(cmds, m.copyShare())

		case key.Matches(msg, m.keys.Done):
			m.done = poster.ToggleDone(m.done)
			if m.done.Done {
				logging.Activity(logging.ActivityDone, "day", m.cfg.Poster.Day)
			} else {
				logging.Activity(logging.ActivityUndone, "day", m.cfg.Poster.Day)
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		default:
			if m.ready {
				var cmd tea.Cmd
				m.viewport, cmd = m.viewport.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case tea.MouseMsg:
		if m.ready {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ready {
		m.viewport.SetContent(m.content())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) toggleCard(i int) {
	m.cards[i].Toggle()
	event := logging.ActivityHide
	if m.cards[i].Reveal.Revealed {
		event = logging.ActivityReveal
	}
	logging.Activity(event, "example", i+1)
}

// copyShare copies the share text off the update loop. Only success is
// reported back; a failed copy changes nothing on screen.
func (m Model) copyShare() tea.Cmd {
	text := poster.ComposeShareText(m.cfg.Poster)
	copier := m.copier
	return func() tea.Msg {
		return copyResultMsg{ok: copier.Copy(text)}
	}
}
