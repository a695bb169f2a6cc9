package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the board's key bindings.
type KeyMap struct {
	Quit    key.Binding
	Reload  key.Binding
	PrevDay key.Binding
	NextDay key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Move    key.Binding
	Delete  key.Binding
	Yank    key.Binding
	Apply   key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		PrevDay: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev day")),
		NextDay: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next day")),
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Left:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "prev tour")),
		Right:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "next tour")),
		Move:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move visit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete visit")),
		Yank:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy id")),
		Apply:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// helpNormal is the footer hint in normal mode.
const helpNormal = "j/k visit  h/l tour  [/] day  m move  d delete  y copy id  r reload  q quit"

// helpMove is the footer hint in move mode.
const helpMove = "j/k time ±15min  h/l caregiver  enter apply  esc cancel"
