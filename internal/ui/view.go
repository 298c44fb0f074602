package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rotasegura/beacon/internal/core"
	"github.com/rotasegura/beacon/internal/discovery"
	"github.com/rotasegura/beacon/internal/event"
	"github.com/rotasegura/beacon/internal/logger"
	"github.com/rotasegura/beacon/internal/ui/component"
	"github.com/rotasegura/beacon/internal/ui/key"
)

var viewNames = []string{"probes", "sweeps", "candidates"}

// events the monitor reacts to
var watchedEvents = []event.EventType{
	event.SweepStartedEventType,
	event.ProbeCompletedEventType,
	event.EndpointResolvedEventType,
	event.DiscoveryExhaustedEventType,
	event.EndpointInvalidatedEventType,
	event.ErrorEventType,
	event.FatalErrorEventType,
}

type view struct {
	ctx            context.Context
	cancel         context.CancelFunc
	app            *tview.Application
	root           *tview.Flex
	pages          *tview.Pages
	header         *component.Header
	probeTable     *component.ProbeTable
	sweepTable     *component.SweepTable
	candidateTable *component.CandidateTable
	appCore        *core.Core
	eventChan      chan event.Event
	listenerIDs    []int
	finished       map[string]bool
	focused        tview.Primitive
	focusedName    string
	showingModal   bool
	logger         logger.Logger
}

func newView(appCore *core.Core) *view {
	ctx, cancel := context.WithCancel(appCore.Context())

	v := &view{
		ctx:            ctx,
		cancel:         cancel,
		app:            tview.NewApplication(),
		root:           tview.NewFlex().SetDirection(tview.FlexRow),
		pages:          tview.NewPages(),
		probeTable:     component.NewProbeTable(),
		sweepTable:     component.NewSweepTable(),
		candidateTable: component.NewCandidateTable(),
		appCore:        appCore,
		eventChan:      make(chan event.Event, 100),
		listenerIDs:    []int{},
		finished:       map[string]bool{},
		logger:         logger.New(),
	}

	v.header = component.NewHeader(appCore.Conf().Platform, viewNames, v.onViewSwitch)

	v.pages.AddPage("probes", v.probeTable.Primitive(), true, false)
	v.pages.AddPage("sweeps", v.sweepTable.Primitive(), true, false)
	v.pages.AddPage("candidates", v.candidateTable.Primitive(), true, false)

	v.root.
		AddItem(v.header.Primitive(), 12, 1, false).
		AddItem(v.pages, 0, 1, true)

	for _, evtType := range watchedEvents {
		id := appCore.RegisterEventListener(evtType, v.eventChan)
		v.listenerIDs = append(v.listenerIDs, id)
	}

	v.candidateTable.UpdateTable(appCore.Candidates())

	v.focused = v.probeTable.Primitive()
	v.focusedName = "probes"

	v.focus()

	return v
}

func (v *view) onViewSwitch(text string) {
	text = strings.TrimSpace(text)

	for _, name := range viewNames {
		if text != "" && strings.HasPrefix(name, text) {
			v.focusedName = name

			switch name {
			case "probes":
				v.focused = v.probeTable.Primitive()
			case "sweeps":
				v.focused = v.sweepTable.Primitive()
			case "candidates":
				v.focused = v.candidateTable.Primitive()
			}

			break
		}
	}

	v.header.HideSwitchViewInput()
	v.focus()
}

func (v *view) bindKeys() {
	v.app.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		switch evt.Key() {
		case key.KeyCtrlC:
			v.stop()
			return evt
		case key.KeyEsc:
			if v.header.IsShowingSwitchViewInput() {
				v.header.HideSwitchViewInput()
				v.focus()
				return nil
			}
		}

		if v.showingModal {
			return evt
		}

		if v.header.IsShowingSwitchViewInput() {
			return evt
		}

		switch evt.Rune() {
		case key.RuneColon:
			v.header.ShowSwitchViewInput()
			v.app.SetFocus(v.header.SwitchViewInput().Primitive())
			return nil
		case key.RuneRediscover:
			v.resolve(true)
			return nil
		case key.RuneInvalidate:
			v.appCore.Invalidate()
			return nil
		}

		return evt
	})
}

func (v *view) focus() {
	v.pages.SwitchToPage(v.focusedName)
	v.app.SetFocus(v.focused)
}

// resolve runs discovery in the background, the result arrives as events
func (v *view) resolve(force bool) {
	v.header.SetResolving(v.appCore.Conf().Platform)

	go func() {
		if _, err := v.appCore.Resolve(v.ctx, force); err != nil {
			v.logger.Debug().Err(err).Msg("monitor resolve failed")
		}
	}()
}

func (v *view) refreshSweeps() {
	sweeps, err := v.appCore.History()

	if err != nil {
		v.logger.Error().Err(err).Msg("failed to load sweep history")
		return
	}

	v.sweepTable.UpdateTable(sweeps)
}

func (v *view) showExhaustedModal(exhausted *discovery.ExhaustedError) {
	if v.showingModal {
		return
	}

	message := fmt.Sprintf(
		"Could not reach the backend after %d probes.\n\n"+
			"Check that the server is running and reachable from this network.",
		len(exhausted.Results),
	)

	closeModal := func() {
		v.pages.RemovePage("modal")
		v.showingModal = false
		v.focus()
	}

	modal := component.NewModal(message, []component.ModalButton{
		{
			Label: "Retry",
			OnClick: func() {
				closeModal()
				v.resolve(true)
			},
		},
		{
			Label:   "Close",
			OnClick: closeModal,
		},
	})

	v.showingModal = true
	v.pages.AddPage("modal", modal.Primitive(), true, true)
	v.app.SetFocus(modal.Primitive())
}

func (v *view) handleEvent(evt event.Event) {
	switch evt.Type {
	case event.SweepStartedEventType:
		payload := evt.Payload.(discovery.SweepStartedPayload)

		if !v.finished[payload.SweepID] {
			v.header.SetResolving(string(payload.Platform))
		}

		v.probeTable.StartSweep(payload)
		v.candidateTable.UpdateTable(payload.Candidates)
	case event.ProbeCompletedEventType:
		v.probeTable.UpdateTable(evt.Payload.(discovery.ProbeCompletedPayload))
	case event.EndpointResolvedEventType:
		payload := evt.Payload.(discovery.EndpointResolvedPayload)
		v.finished[payload.SweepID] = true
		v.header.SetEndpoint(payload.Endpoint)
		v.refreshSweeps()
	case event.DiscoveryExhaustedEventType:
		payload := evt.Payload.(discovery.ExhaustedPayload)
		v.finished[payload.SweepID] = true

		reason := "no candidate answered"

		if errors.Is(payload.Err, context.DeadlineExceeded) {
			reason = "discovery deadline elapsed"
		}

		v.header.SetUnavailable(reason)
		v.refreshSweeps()

		if !errors.Is(payload.Err, context.Canceled) {
			v.showExhaustedModal(payload.Err)
		}
	case event.EndpointInvalidatedEventType:
		v.header.SetInvalidated()
	case event.ErrorEventType:
		v.logger.Error().Err(evt.Payload.(error)).Msg("background error")
	case event.FatalErrorEventType:
		v.logger.Error().Err(evt.Payload.(error)).Msg("fatal background error")
		v.stop()
	}
}

func (v *view) processBackgroundEventUpdates() {
	go func() {
		for {
			select {
			case <-v.ctx.Done():
				return
			case evt := <-v.eventChan:
				v.app.QueueUpdateDraw(func() {
					v.handleEvent(evt)
				})
			}
		}
	}()
}

func (v *view) stop() {
	for _, id := range v.listenerIDs {
		v.appCore.RemoveEventListener(id)
	}

	v.cancel()
	v.appCore.Stop()
	v.app.Stop()
}

func (v *view) run() error {
	v.bindKeys()
	v.processBackgroundEventUpdates()
	v.appCore.StartDaemon()
	v.resolve(false)
	return v.app.SetRoot(v.root, true).EnableMouse(true).Run()
}
