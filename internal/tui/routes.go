package tui

import tea "github.com/charmbracelet/bubbletea"

// Static navigation paths.
const (
	PathHome     = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
)

// Routes maps a path to the constructor of its page. A page is built fresh on
// every navigation and dropped when the router leaves it.
type Routes map[string]func() tea.Model

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Path: path} }
}
