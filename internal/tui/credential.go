// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-auth-shell/internal/form"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// credentialView holds the texts that differ between credential pages.
type credentialView struct {
	title         string
	submitLabel   string
	failurePrefix string
}

// CredentialModel is the Bubble Tea model shared by the login and register
// pages. It renders one input per declared form field, mirrors every edit
// into its [form.Controller], submits on enter and shows the outcome in a
// blocking notification.
type CredentialModel struct {
	ctx  context.Context
	view credentialView
	form *form.Controller

	fields  []form.Field
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	hint    string
	notice  *notificationModel

	logger *logger.Logger
}

func newCredentialModel(ctx context.Context, view credentialView, controller *form.Controller, logger *logger.Logger) *CredentialModel {
	fields := controller.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(f.Label)
		in.CharLimit = 256
		in.Width = 40
		if f.Secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &CredentialModel{
		ctx:     ctx,
		view:    view,
		form:    controller,
		fields:  fields,
		inputs:  inputs,
		spinner: s,
		logger:  logger,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *CredentialModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [SubmitResult] from this page's form opens the notification for the
//     settled outcome; results of other forms are dropped.
//   - esc navigates home; tab / shift+tab move focus.
//   - enter starts a submission unless one is already in flight.
//   - while the notification is open, only enter / esc (close) and c (copy) act.
//
// All other messages go to the focused input, whose value is then stored in
// the form.
func (m *CredentialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitResult:
		if msg.Source != m.form {
			m.logger.Debug().
				Str("endpoint", m.form.Endpoint()).
				Stringer("outcome", msg.Outcome.Kind).
				Msg("dropping outcome of a previous page")
			return m, nil
		}
		m.notice = newNotification(msg.Outcome, m.view.failurePrefix)
		m.logger.Info().
			Str("endpoint", m.form.Endpoint()).
			Stringer("outcome", msg.Outcome.Kind).
			Msg("submission outcome shown")
		return m, nil

	case copiedMsg:
		if m.notice != nil {
			if msg.err != nil {
				m.notice.status = "Copy failed: " + msg.err.Error()
			} else {
				m.notice.status = "Copied"
			}
		}
		return m, nil

	case spinner.TickMsg:
		if m.form.State().Phase != form.Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.notice != nil {
			return m, m.updateNotice(msg)
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(PathHome)
		case key.Matches(msg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if err := m.form.SetField(m.fields[m.focus].Name, m.inputs[m.focus].Value()); err != nil {
		m.logger.Err(err).Msg("storing field value")
	}
	return m, cmd
}

func (m *CredentialModel) updateNotice(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
		m.notice = nil
	case key.Matches(msg, keys.copy):
		text := m.notice.message
		return func() tea.Msg {
			return copiedMsg{err: writeClipboard(text)}
		}
	}
	return nil
}

// submit starts a submission and returns the command that completes it.
func (m *CredentialModel) submit() tea.Cmd {
	s, err := m.form.Begin()
	if err != nil {
		var missing *form.MissingFieldError
		switch {
		case errors.Is(err, form.ErrSubmissionInFlight):
		case errors.As(err, &missing):
			m.hint = "Please fill in: " + m.labels(missing.Fields)
		default:
			m.hint = err.Error()
		}
		return nil
	}

	m.hint = ""
	ctx, source := m.ctx, m.form
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return SubmitResult{Source: source, Outcome: s.Run(ctx)}
	})
}

func (m *CredentialModel) labels(names []string) string {
	labels := make([]string, 0, len(names))
	for _, name := range names {
		for _, f := range m.fields {
			if f.Name == name {
				name = strings.ToLower(f.Label)
				break
			}
		}
		labels = append(labels, name)
	}
	return strings.Join(labels, ", ")
}

func (m *CredentialModel) moveFocus(delta int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// View implements [tea.Model]. Renders the form as a two-column table, the
// submit button (with a spinner while submitting), the missing-field hint and,
// on top of everything, the open notification.
func (m *CredentialModel) View() string {
	if m.notice != nil {
		return renderPage(m.view.title, m.notice.View(), "")
	}

	labelWidth := len("Field")
	for _, f := range m.fields {
		labelWidth = max(labelWidth, len(f.Label))
	}

	var b strings.Builder
	b.WriteString(padRight("Field", labelWidth))
	b.WriteString(" │ Value\n")
	b.WriteString(strings.Repeat("─", labelWidth+1))
	b.WriteString("┼────────────────────────────────────────────\n")
	for i, f := range m.fields {
		b.WriteString(padRight(f.Label, labelWidth))
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	b.WriteString("\n")
	if m.form.State().Phase == form.Submitting {
		b.WriteString("[" + m.view.submitLabel + " " + m.spinner.View() + "]\n")
	} else {
		b.WriteString("[" + m.view.submitLabel + "]\n")
	}

	if m.hint != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(m.hint))
		b.WriteString("\n")
	}

	return renderPage(m.view.title, strings.TrimRight(b.String(), "\n"), "esc: home │ tab: next field │ enter: submit")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
