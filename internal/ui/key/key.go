package key

import "github.com/gdamore/tcell/v2"

/**
 * Keys and Runes!
 */

const (
	RuneColon      = ':'
	RuneRediscover = 'r'
	RuneInvalidate = 'i'
)

const (
	KeyCtrlC = tcell.KeyCtrlC
	KeyEnter = tcell.KeyEnter
	KeyEsc   = tcell.KeyEsc
)
