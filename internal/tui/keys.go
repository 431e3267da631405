package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	tab      key.Binding
	backtab  key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	generate key.Binding
	derive   key.Binding
	encrypt  key.Binding
	decrypt  key.Binding
	copy     key.Binding
	dismiss  key.Binding
}

// Operations sit on ctrl chords so plain Enter stays free for inserting
// line breaks inside the payload fields.
var keys = keyMap{
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	generate: key.NewBinding(key.WithKeys("ctrl+g")),
	derive:   key.NewBinding(key.WithKeys("ctrl+p")),
	encrypt:  key.NewBinding(key.WithKeys("ctrl+e")),
	decrypt:  key.NewBinding(key.WithKeys("ctrl+d")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	dismiss:  key.NewBinding(key.WithKeys("ctrl+x")),
}
