package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the oscilloscope key bindings.
type keyMap struct {
	Quit         key.Binding
	Pause        key.Binding
	ShrinkWindow key.Binding
	GrowWindow   key.Binding
	ZoomInY      key.Binding
	ZoomOutY     key.Binding
	CycleAvg     key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	ShrinkWindow: key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "zoom in time"),
	),
	GrowWindow: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out time"),
	),
	ZoomInY: key.NewBinding(
		key.WithKeys("alt++"),
		key.WithHelp("alt++", "zoom in amplitude"),
	),
	ZoomOutY: key.NewBinding(
		key.WithKeys("alt+-"),
		key.WithHelp("alt+-", "zoom out amplitude"),
	),
	CycleAvg: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "moving average"),
	),
}

// helpText is the full key hint shown in the footer.
const helpText = "p: pause  a: moving average  +/-: zoom time  alt++/alt+-: zoom amplitude  q: quit"
