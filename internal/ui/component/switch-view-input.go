package component

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rotasegura/beacon/internal/ui/key"
	"github.com/rotasegura/beacon/internal/ui/style"
)

// SwitchViewInput input field used to switch between views
type SwitchViewInput struct {
	root     *tview.InputField
	onSubmit func(text string)
}

// NewSwitchViewInput returns a new instance of SwitchViewInput
func NewSwitchViewInput(views []string, onSubmit func(text string)) *SwitchViewInput {
	input := tview.NewInputField()
	input.SetFieldStyle(style.StyleDefault.Dim(true))
	input.SetBorderPadding(0, 0, 1, 1)
	input.SetPlaceholderStyle(style.StyleDefault.Dim(true))

	input.SetFocusFunc(func() {
		input.SetBorder(true)
		input.SetBorderColor(style.ColorPurple)
		input.SetPlaceholder("Enter view: " + strings.Join(views, ", "))
	})

	input.SetBlurFunc(func() {
		input.SetBorder(false)
		input.SetPlaceholder("")
	})

	i := &SwitchViewInput{
		root:     input,
		onSubmit: onSubmit,
	}

	i.root.SetDoneFunc(func(k tcell.Key) {
		if k == key.KeyEnter {
			i.onSubmit(i.root.GetText())
			i.root.SetText("")
		}
	})

	return i
}

// Primitive returns the root primitive for SwitchViewInput
func (i *SwitchViewInput) Primitive() tview.Primitive {
	return i.root
}
