package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"edgebubble/internal/bubble"
	"edgebubble/internal/config"
	"edgebubble/internal/eventbus"
	"edgebubble/internal/geometry"
	"edgebubble/internal/ui/views"
)

// frameInterval paces the snap animation at roughly 60 fps
const frameInterval = time.Second / 60

// Option customizes a Model
type Option func(*Model)

// WithClock replaces time.Now for the bubble animation
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// Model represents the UI state
type Model struct {
	config *config.Config
	logger *slog.Logger
	bus    eventbus.EventBus
	now    func() time.Time

	width  int
	height int
	styles *views.Styles
	keys   keyMap
	help   help.Model

	element    *Element
	dispatcher *Dispatcher
	overlays   *OverlayHost
	scheduler  *Scheduler
	controller *bubble.Controller

	mounted     bool
	framing     bool // a frame tick is in flight
	inPagerMode bool // tracks if we're currently in pager mode
	heading     geometry.Direction
	status      string
	lastErr     error

	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus may be nil.
func NewModel(cfg *config.Config, logger *slog.Logger, bus eventbus.EventBus, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &Model{
		config:       cfg,
		logger:       logger,
		bus:          bus,
		now:          time.Now,
		styles:       views.NewStyles(),
		keys:         defaultKeyMap(),
		help:         help.New(),
		overlays:     NewOverlayHost(),
		scheduler:    NewScheduler(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.element = NewElement(cfg.Bubble.Width, cfg.Bubble.Height, cfg.Bubble.Label, m.now)
	m.dispatcher = NewDispatcher(func(p geometry.Point) bool {
		return m.element.Bounds().Contains(p)
	})

	controllerOpts := []bubble.Option{bubble.WithLogger(logger)}
	if bus != nil {
		controllerOpts = append(controllerOpts, bubble.WithEventBus(bus))
	}
	m.controller = bubble.NewController(
		bubble.Config{IndicatorSize: cfg.IndicatorSize},
		m.dispatcher,
		m.overlays,
		m.scheduler,
		controllerOpts...,
	)
	m.controller.Direction().Watch(func(d geometry.Direction) {
		m.heading = d
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Controller exposes the bubble controller
func (m *Model) Controller() *bubble.Controller {
	return m.controller
}

// Element exposes the on-screen bubble
func (m *Model) Element() *Element {
	return m.element
}

// Status returns the text of the status line
func (m *Model) Status() string {
	return m.status
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		vp := m.viewport()
		if !m.mounted {
			m.dispatcher.SetViewport(vp)
			m.controller.Mount(m.element)
			m.mounted = true
		} else {
			m.dispatcher.Resize(vp)
		}
		return m, m.afterInput()

	case tea.MouseMsg:
		if m.inPagerMode {
			return m, nil
		}
		m.dispatcher.HandleMouse(msg)
		return m, m.afterInput()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case timerFiredMsg:
		m.scheduler.Fire(msg.id)
		return m, m.afterInput()

	case frameMsg:
		m.framing = false
		return m, m.nextFrame()

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.lastErr = msg.err
			m.logger.Error("help pager failed", "error", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.controller.Unmount()
		m.mounted = false
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		if m.mounted && !m.controller.Dragging() {
			m.controller.Initialize()
		}
		return m, m.afterInput()
	case key.Matches(msg, m.keys.Help):
		if m.program == nil {
			return m, nil
		}
		return m, m.fetchHelpPager(m.helpRenderer.RenderHelpContent(m.config))
	}
	return m, nil
}

// handleEvent turns lifecycle events from the bus into status text
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.DragStartedEvent:
		m.status = fmt.Sprintf("dragging from %.0f,%.0f", e.Pointer.X, e.Pointer.Y)
	case eventbus.DragEndedEvent:
		m.status = fmt.Sprintf("released toward %s", e.Direction)
	case eventbus.SnappedEvent:
		m.status = fmt.Sprintf("snapped %s", e.Direction)
	case eventbus.ViewportChangedEvent:
		m.status = fmt.Sprintf("viewport %.0fx%.0f", e.Viewport.Width, e.Viewport.Height)
	}
}

// afterInput collects timer ticks queued by the controller and starts the
// frame loop when the bubble began moving
func (m *Model) afterInput() tea.Cmd {
	return tea.Batch(m.scheduler.Drain(), m.nextFrame())
}

func (m *Model) nextFrame() tea.Cmd {
	if m.framing || !m.element.Animating() {
		return nil
	}
	m.framing = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// fetchHelpPager returns a command that shows help in ov, pausing and resuming rendering
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

func (m *Model) footerHeight() int {
	if m.config.UI.ShowHelp {
		return 2
	}
	return 1
}

// viewport is the screen minus the footer rows
func (m *Model) viewport() geometry.Viewport {
	h := m.height - m.footerHeight()
	if h < 0 {
		h = 0
	}
	return geometry.Viewport{Width: float64(m.width), Height: float64(h)}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	vp := m.viewport()
	canvas := views.NewCanvas(m.width, int(vp.Height))
	m.overlays.Draw(canvas, m.styles, vp)
	views.DrawBubble(canvas, m.styles, m.element.Bounds(), m.element.Label(), m.element.Grabbed())

	var b strings.Builder
	b.WriteString(canvas.Render())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	if m.config.UI.ShowHelp {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m *Model) renderStatus() string {
	line := m.styles.Status.Render("edge: ") + m.styles.Direction.Render(m.heading.String())
	if m.status != "" {
		line += m.styles.Status.Render("  " + m.status)
	}
	if m.lastErr != nil {
		line += m.styles.Status.Render(fmt.Sprintf("  error: %v", m.lastErr))
	}
	return line
}
