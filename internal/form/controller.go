// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/MKhiriev/go-auth-shell/internal/adapter"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/validators"
	"github.com/MKhiriev/go-auth-shell/models"
)

// Field declares one input of a form. Rules is a validator tag checked when a
// submission begins; an empty Rules accepts any value.
type Field struct {
	Name   string
	Label  string
	Secret bool
	Rules  string
}

// State is a snapshot of a controller.
type State struct {
	Fields map[string]string
	Phase  Phase
}

// Controller holds the field values and phase of one form.
type Controller struct {
	mu sync.Mutex

	client   adapter.ServerAdapter
	endpoint string
	fields   []Field
	values   map[string]string
	phase    Phase

	logger *logger.Logger
}

// New binds a controller to endpoint and the declared fields. Every field
// starts empty and the phase starts at Idle.
func New(client adapter.ServerAdapter, endpoint string, fields []Field, logger *logger.Logger) *Controller {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.Name] = ""
	}

	return &Controller{
		client:   client,
		endpoint: endpoint,
		fields:   append([]Field(nil), fields...),
		values:   values,
		phase:    Idle,
		logger:   logger,
	}
}

// Endpoint returns the path the form posts to.
func (c *Controller) Endpoint() string {
	return c.endpoint
}

// Fields returns the declared fields in declaration order.
func (c *Controller) Fields() []Field {
	return append([]Field(nil), c.fields...)
}

// SetField stores value verbatim under name.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.values[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	c.values[name] = value
	return nil
}

// State returns a snapshot of the field values and the current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{Fields: maps.Clone(c.values), Phase: c.phase}
}

// Begin starts a submission. It returns ErrSubmissionInFlight while a previous
// submission has not settled and *MissingFieldError when a field fails its
// rules; in both cases nothing changes. Otherwise the phase moves to
// Submitting and the current values are captured for the request.
func (c *Controller) Begin() (*Submission, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == Submitting {
		return nil, ErrSubmissionInFlight
	}

	if err := c.checkFields(); err != nil {
		return nil, err
	}

	if c.phase.Terminal() {
		if err := c.moveTo(Idle); err != nil {
			return nil, err
		}
	}
	if err := c.moveTo(Submitting); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("endpoint", c.endpoint).Msg("submission started")
	return &Submission{controller: c, body: maps.Clone(c.values)}, nil
}

// Submit begins a submission and runs it to completion.
func (c *Controller) Submit(ctx context.Context) (models.AuthOutcome, error) {
	s, err := c.Begin()
	if err != nil {
		return models.AuthOutcome{}, err
	}
	return s.Run(ctx), nil
}

func (c *Controller) checkFields() error {
	var missing []string
	for _, f := range c.fields {
		if f.Rules == "" {
			continue
		}
		err := validators.Var(f.Name, c.values[f.Name], f.Rules)
		if err == nil {
			continue
		}
		var fe validators.FieldErrors
		if !errors.As(err, &fe) {
			return fmt.Errorf("checking field %q: %w", f.Name, err)
		}
		missing = append(missing, f.Name)
	}

	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}
	return nil
}

// moveTo must be called with mu held.
func (c *Controller) moveTo(next Phase) error {
	if !c.phase.canMoveTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.phase, next)
	}
	c.phase = next
	return nil
}

func (c *Controller) settle(outcome models.AuthOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := Failed
	if outcome.IsOk() {
		next = Succeeded
	}
	if err := c.moveTo(next); err != nil {
		c.logger.Err(err).Msg("settling submission")
		return
	}

	c.logger.Debug().
		Str("endpoint", c.endpoint).
		Stringer("outcome", outcome.Kind).
		Int("status", outcome.StatusCode).
		Msg("submission settled")
}

// Submission is one accepted call to Begin.
type Submission struct {
	controller *Controller
	body       map[string]string

	once    sync.Once
	outcome models.AuthOutcome
}

// Body returns the field values captured when the submission began.
func (s *Submission) Body() map[string]string {
	return maps.Clone(s.body)
}

// Run posts the captured values, classifies the result and settles the
// controller. Only the first call reaches the network; later calls return
// the same outcome.
func (s *Submission) Run(ctx context.Context) models.AuthOutcome {
	s.once.Do(func() {
		c := s.controller
		resp, err := c.client.Post(ctx, c.endpoint, s.body)
		s.outcome = adapter.Classify(resp, err)
		c.settle(s.outcome)
	})
	return s.outcome
}
