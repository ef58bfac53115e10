package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"edgebubble/internal/config"
	"edgebubble/internal/eventbus"
	"edgebubble/internal/ui"
)

// forwardedEvents are the lifecycle events shown in the status line
var forwardedEvents = []eventbus.EventType{
	eventbus.EventDragStarted,
	eventbus.EventDragEnded,
	eventbus.EventSnapped,
}

// loggedEvents are recorded at debug level only
var loggedEvents = []eventbus.EventType{
	eventbus.EventViewportChanged,
	eventbus.EventDragStarted,
	eventbus.EventDirectionChanged,
	eventbus.EventDragEnded,
	eventbus.EventSnapped,
	eventbus.EventOverlaysDisposed,
}

// programOptions maps UI settings onto Bubble Tea options
func programOptions(ctx context.Context, cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.MouseAllMotion {
		opts = append(opts, tea.WithMouseAllMotion())
	} else {
		// only reports motion while a button is held, which is all a drag needs
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

func runTUI(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create event bus
	bus := eventbus.New(logger)
	defer bus.Close()

	for _, t := range loggedEvents {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			logger.Debug("event", "type", e.Type(), "event", fmt.Sprintf("%+v", e))
		})
	}

	// Create UI model
	uiModel := ui.NewModel(cfg, logger, bus)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, programOptions(ctx, cfg)...)
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, t := range forwardedEvents {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				logger.Warn("event channel full, dropping event", "type", e.Type())
			}
		})
	}

	// Start forwarding events to UI in background
	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	logger.Info("starting UI")
	_, err := p.Run()

	// Cleanup
	bus.Close()
	close(eventChan)
	<-done

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("error running program", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}
