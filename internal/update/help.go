package update

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Submit      key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
	RowUp       key.Binding
	RowDown     key.Binding
	ToggleHelp  key.Binding
	CloseHelp   key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		HistoryPrev: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous command")),
		HistoryNext: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next command")),
		RowUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		RowDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		ToggleHelp:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle help")),
		CloseHelp:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.HistoryPrev, k.ToggleHelp, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.HistoryPrev, k.HistoryNext},
		{k.RowUp, k.RowDown},
		{k.ToggleHelp, k.CloseHelp, k.Quit},
	}
}
