// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the client: a router over three
// static pages (home, login, register) built with Bubble Tea.
package tui

import (
	"context"

	"github.com/MKhiriev/go-auth-shell/internal/adapter"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	client    adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(client adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{client: client, buildInfo: buildInfo, logger: logger}
}

// Routes returns the route table. Pages built from it use ctx for their
// requests.
func (t *TUI) Routes(ctx context.Context) Routes {
	return Routes{
		PathHome: func() tea.Model {
			return NewHomeModel()
		},
		PathLogin: func() tea.Model {
			return NewLoginModel(ctx, t.client, t.logger.GetChildLogger())
		},
		PathRegister: func() tea.Model {
			return NewRegisterModel(ctx, t.client, t.logger.GetChildLogger())
		},
	}
}

// Run shows the home page and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.Routes(ctx), PathHome, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(RootModel); ok {
		t.logger.Info().Str("path", result.CurrentPath()).Bool("ctrl_c", result.QuitByUser()).Msg("tui closed")
	}
	return nil
}
