package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	First  key.Binding
	Last   key.Binding
	Jump   key.Binding
	Picker key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding

	Choose   key.Binding
	Close    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", " ", "n", "pgdown", "down", "j"),
			key.WithHelp("→/space", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p", "pgup", "up", "k"),
			key.WithHelp("←", "prev"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "start"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "end"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to header"),
		),
		Picker: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find section"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload deck"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "jump"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Picker, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last},
		{k.Jump, k.Picker, k.Reload},
		{k.Help, k.Quit},
	}
}

// pickerHelp is the footer shown while the section picker is open.
func (k keyMap) pickerHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Close}
}
