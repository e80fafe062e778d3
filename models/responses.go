package models

import (
	"sort"
	"strings"
)

// MessageResponse is the JSON body of every reply from the authentication
// server, successful or not.
type MessageResponse struct {
	// Message is the server-authored, human-readable outcome.
	Message string `json:"message,omitempty"`

	// Errors carries per-field validation failures. Only set on 400
	// replies to registration requests.
	Errors map[string][]string `json:"errors,omitempty"`
}

// ErrorsText flattens Errors into a single deterministic line such as
// "email: required; password: required". It returns an empty string when
// there are no field errors.
func (r MessageResponse) ErrorsText() string {
	if len(r.Errors) == 0 {
		return ""
	}

	fields := make([]string, 0, len(r.Errors))
	for field := range r.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(r.Errors[field], ", "))
	}
	return strings.Join(parts, "; ")
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}

// UserSummary is the admin view of an account.
type UserSummary struct {
	ID        int64    `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Phone     string   `json:"phone"`
	Active    bool     `json:"active"`
	Roles     []string `json:"roles"`
}

// NewUserSummary copies the public fields of u. Roles is never nil, so it
// encodes as an empty list rather than null.
func NewUserSummary(u User) UserSummary {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return UserSummary{
		ID:        u.UserID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Active:    u.Active,
		Roles:     roles,
	}
}
