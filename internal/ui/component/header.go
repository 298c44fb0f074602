package component

import (
	"fmt"
	"strings"
	"time"

	"github.com/rivo/tview"
	"github.com/rotasegura/beacon/internal/endpoint"
	"github.com/rotasegura/beacon/internal/ui/style"
)

const appText = `
 _                                
| |__   ___  __ _  ___ ___  _ __  
| '_ \ / _ \/ _' |/ __/ _ \| '_ \ 
| |_) |  __/ (_| | (_| (_) | | | |
|_.__/ \___|\__,_|\___\___/|_| |_|`

// Header banner, key legend and endpoint status line
type Header struct {
	root              *tview.Flex
	legendContainer   *tview.Flex
	legendCol1        *tview.Flex
	legendCol2        *tview.Flex
	switchViewInput   *SwitchViewInput
	viewsText         *tview.TextView
	endpointText      *tview.TextView
	showingSwitchView bool
}

// NewHeader returns a new instance of Header
func NewHeader(platform string, views []string, onViewSwitch func(text string)) *Header {
	h := &Header{}

	h.root = tview.NewFlex().SetDirection(tview.FlexRow)

	h.legendContainer = tview.NewFlex().SetDirection(tview.FlexColumn)

	h.legendCol1 = tview.NewFlex()

	h.legendCol2 = tview.NewFlex().SetDirection(tview.FlexRow)

	h.setDefaultLegend()

	h.root.AddItem(h.legendContainer, 0, 1, false)

	h.viewsText = tview.NewTextView().
		SetText("views: " + strings.Join(views, ", "))
	h.viewsText.SetTextColor(style.ColorOrange)
	h.viewsText.SetTextAlign(tview.AlignLeft)

	h.switchViewInput = NewSwitchViewInput(views, onViewSwitch)

	h.endpointText = tview.NewTextView()
	h.endpointText.SetTextAlign(tview.AlignLeft)

	h.SetResolving(platform)

	h.root.AddItem(h.endpointText, 1, 1, false)
	h.root.AddItem(h.switchViewInput.Primitive(), 3, 1, false)

	h.showingSwitchView = false

	return h
}

// Primitive returns the root primitive for Header
func (h *Header) Primitive() tview.Primitive {
	return h.root
}

// SetResolving shows that a sweep is running
func (h *Header) SetResolving(platform string) {
	h.endpointText.SetTextColor(style.ColorOrange)
	h.endpointText.SetText(fmt.Sprintf("Platform: %s, discovering backend…", platform))
}

// SetEndpoint shows the resolved endpoint
func (h *Header) SetEndpoint(ep *endpoint.ResolvedEndpoint) {
	h.endpointText.SetTextColor(style.ColorLightGreen)
	h.endpointText.SetText(fmt.Sprintf(
		"Backend: %s ports %v, discovered %s",
		ep.Host(),
		ep.VerifiedPorts(),
		ep.DiscoveredAt().Local().Format(time.TimeOnly),
	))
}

// SetUnavailable shows that no backend could be found
func (h *Header) SetUnavailable(reason string) {
	h.endpointText.SetTextColor(style.ColorRed)
	h.endpointText.SetText("Backend unavailable: " + reason)
}

// SetInvalidated shows that the cached endpoint was dropped
func (h *Header) SetInvalidated() {
	h.endpointText.SetTextColor(style.ColorDimGrey)
	h.endpointText.SetText("Backend: no cached endpoint, press \"r\" to rediscover")
}

// ShowSwitchViewInput shows the list of views next to the legend
func (h *Header) ShowSwitchViewInput() {
	if !h.showingSwitchView {
		h.legendCol2.AddItem(h.viewsText, 0, 1, false)
		h.showingSwitchView = true
	}
}

// HideSwitchViewInput hides the list of views
func (h *Header) HideSwitchViewInput() {
	if h.showingSwitchView {
		h.legendCol2.RemoveItem(h.viewsText)
		h.showingSwitchView = false
	}
}

// IsShowingSwitchViewInput reports whether the view list is visible
func (h *Header) IsShowingSwitchViewInput() bool {
	return h.showingSwitchView
}

// SwitchViewInput returns the view switching input
func (h *Header) SwitchViewInput() *SwitchViewInput {
	return h.switchViewInput
}

func (h *Header) setDefaultLegend() {
	title := tview.NewTextView().
		SetText(appText).
		SetTextColor(style.ColorPurple)

	h.legendCol1.AddItem(title, 0, 1, false)

	emptyText := tview.NewTextView().SetText("")
	h.legendCol2.AddItem(emptyText, 0, 1, false)

	for _, text := range []string{
		"type \":\" to change views",
		"\"r\" rediscover backend",
		"\"i\" invalidate cached endpoint",
	} {
		legend := tview.NewTextView().SetText(text)
		legend.SetTextColor(style.ColorOrange)
		legend.SetTextAlign(tview.AlignLeft)
		h.legendCol2.AddItem(legend, 0, 1, false)
	}

	h.legendContainer.AddItem(h.legendCol1, 40, 1, false)
	h.legendContainer.AddItem(h.legendCol2, 0, 1, false)
}
