package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	quit          key.Binding
	newDeck       key.Binding
	edit          key.Binding
	delete        key.Binding
	refresh       key.Binding
	settings      key.Binding
	retry         key.Binding
	flip          key.Binding
	confLow       key.Binding
	confMid       key.Binding
	confHigh      key.Binding
	copy          key.Binding
	restart       key.Binding
	theme         key.Binding
	logout        key.Binding
	deleteAccount key.Binding
	insert        key.Binding
	remove        key.Binding
	nextCard      key.Binding
	prevCard      key.Binding
	yes           key.Binding
	no            key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	quit:          key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newDeck:       key.NewBinding(key.WithKeys("n")),
	edit:          key.NewBinding(key.WithKeys("e")),
	delete:        key.NewBinding(key.WithKeys("d")),
	refresh:       key.NewBinding(key.WithKeys("r")),
	settings:      key.NewBinding(key.WithKeys("s")),
	retry:         key.NewBinding(key.WithKeys("r")),
	flip:          key.NewBinding(key.WithKeys("f", " ")),
	confLow:       key.NewBinding(key.WithKeys("1")),
	confMid:       key.NewBinding(key.WithKeys("2")),
	confHigh:      key.NewBinding(key.WithKeys("3")),
	copy:          key.NewBinding(key.WithKeys("c")),
	restart:       key.NewBinding(key.WithKeys("r")),
	theme:         key.NewBinding(key.WithKeys("t")),
	logout:        key.NewBinding(key.WithKeys("l")),
	deleteAccount: key.NewBinding(key.WithKeys("x")),
	insert:        key.NewBinding(key.WithKeys("ctrl+a")),
	remove:        key.NewBinding(key.WithKeys("ctrl+d")),
	nextCard:      key.NewBinding(key.WithKeys("ctrl+n")),
	prevCard:      key.NewBinding(key.WithKeys("ctrl+p")),
	yes:           key.NewBinding(key.WithKeys("y")),
	no:            key.NewBinding(key.WithKeys("n")),
}
