package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	search    key.Binding
	filter    key.Binding
	sortBy    key.Binding
	sortOrder key.Binding
	localSort key.Binding
	clearSort key.Binding
	refresh   key.Binding
	save      key.Binding
	switchTo  key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
	enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	logout:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	newItem:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
	search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "status filter")),
	sortBy:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "server sort")),
	sortOrder: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order")),
	localSort: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "sort column")),
	clearSort: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "server order")),
	refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	switchTo:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "login/signup")),
	yes:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
	no:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
}

var (
	listHelp   = []key.Binding{keys.enter, keys.newItem, keys.edit, keys.delete, keys.copy, keys.search, keys.filter, keys.sortBy, keys.sortOrder, keys.localSort, keys.clearSort, keys.prevPage, keys.nextPage, keys.refresh, keys.logout, keys.quit}
	detailHelp = []key.Binding{keys.edit, keys.delete, keys.copy, keys.esc}
	formHelp   = []key.Binding{keys.tab, keys.backtab, keys.save, keys.esc}
	authHelp   = []key.Binding{keys.tab, keys.enter, keys.switchTo}
)
