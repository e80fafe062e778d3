package tui

import (
	"github.com/MKhiriev/go-auth-shell/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps the active page and its path
// 2) handles global Ctrl+C quit and the build-info window
// 3) handles NavigateTo messages by mounting a fresh page
// 4) delegates all other messages to the active page
type RootModel struct {
	routes  Routes
	path    string
	current tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers the route table and mounts startPath.
func NewRootModel(routes Routes, startPath string, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		routes:    routes,
		buildInfo: buildInfo,
	}
	if newPage, ok := routes[startPath]; ok {
		r.path = startPath
		r.current = newPage()
	}
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.path == PathHome:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		newPage, exists := r.routes[nav.Path]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.path = nav.Path
		r.current = newPage()
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("AUTH SHELL", "", "")
	}
	return r.current.View()
}

// CurrentPath reports the path of the mounted page.
func (r RootModel) CurrentPath() string {
	return r.path
}

// QuitByUser reports whether the program ended on ctrl+c.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}
