// Package roster validates team rosters for team-event registration: sizing
// within event bounds, live per-row ID checks, and a wholesale submit check.
package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/youthopia/engine/internal/domain"
	"github.com/youthopia/engine/internal/logger"
	"github.com/youthopia/engine/internal/metrics"
	"github.com/youthopia/engine/internal/registry"
)

// User-facing validation messages.
const (
	MsgAlreadyRegisteredFormat = "User %s is already registered, so you cannot fill out the form."
	MsgDuplicateID             = "Duplicate ID found in this team list."
	MsgEmptyMembers            = "Please fill in details for all team members."
	MsgRowErrors               = "Please fix the errors in the team list before submitting."
)

// Member fields accepted by UpdateMember.
const (
	FieldName = "name"
	FieldID   = "id"
)

var validate = validator.New()

// Row is one roster slot with its live validation state. Row 0 is the team
// leader, which is a label only and carries no extra rules.
type Row struct {
	Member  domain.TeamMember
	IDError string
	Leader  bool
}

// Form is a mutable team roster bounded by the event's member range. Every
// mutation recomputes per-row ID errors so callers can surface them live.
type Form struct {
	min, max int
	members  []domain.TeamMember
	idErrors []string
	registry registry.Lookup
}

// NewForm creates a roster form sized to the event's minimum. A nil registry
// skips the already-registered check.
func NewForm(min, max int, reg registry.Lookup) *Form {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	f := &Form{
		min:      min,
		max:      max,
		members:  make([]domain.TeamMember, min),
		idErrors: make([]string, min),
		registry: reg,
	}
	return f
}

// Size returns the current number of roster slots.
func (f *Form) Size() int { return len(f.members) }

// Bounds returns the event's member range.
func (f *Form) Bounds() (min, max int) { return f.min, f.max }

// SetSize resizes the roster, clamped to the event bounds. Existing entries
// are preserved by index; shrinking truncates, growing appends blank slots.
func (f *Form) SetSize(ctx context.Context, n int) {
	if n < f.min {
		n = f.min
	}
	if n > f.max {
		n = f.max
	}

	if n <= len(f.members) {
		f.members = f.members[:n]
	} else {
		for len(f.members) < n {
			f.members = append(f.members, domain.TeamMember{})
		}
	}
	f.revalidate(ctx)
}

// UpdateMember sets one field of one roster slot and revalidates all rows.
func (f *Form) UpdateMember(ctx context.Context, index int, field, value string) error {
	if index < 0 || index >= len(f.members) {
		return fmt.Errorf("update member %d: %w", index, domain.ErrInvalidInput)
	}

	switch field {
	case FieldName:
		f.members[index].Name = value
	case FieldID:
		f.members[index].ID = value
	default:
		return fmt.Errorf("update member field %q: %w", field, domain.ErrInvalidInput)
	}

	f.revalidate(ctx)
	return nil
}

// Rows returns the roster with each slot's live ID error.
func (f *Form) Rows() []Row {
	rows := make([]Row, len(f.members))
	for i, m := range f.members {
		rows[i] = Row{Member: m, IDError: f.idErrors[i], Leader: i == 0}
	}
	return rows
}

// Members returns a copy of the current roster entries.
func (f *Form) Members() []domain.TeamMember {
	members := make([]domain.TeamMember, len(f.members))
	copy(members, f.members)
	return members
}

// revalidate recomputes every row's ID error. Ordering per row: registry hit
// first, then in-roster duplicate, then clean. Blank IDs are never flagged.
func (f *Form) revalidate(ctx context.Context) {
	f.idErrors = make([]string, len(f.members))
	for i := range f.members {
		f.idErrors[i] = f.validateID(ctx, i)
	}
}

func (f *Form) validateID(ctx context.Context, index int) string {
	id := domain.NormalizeID(f.members[index].ID)
	if id == "" {
		return ""
	}

	if f.registry != nil {
		registered, err := f.registry.IsRegistered(ctx, id)
		if err != nil {
			// A directory outage must not block typing; the submit
			// revalidation gets another chance.
			logger.FromContext(ctx).Warn("Registry lookup failed",
				"member_id", id,
				"error", err)
		} else if registered {
			return fmt.Sprintf(MsgAlreadyRegisteredFormat, id)
		}
	}

	for j, other := range f.members {
		if j == index {
			continue
		}
		if domain.NormalizeID(other.ID) == id {
			return MsgDuplicateID
		}
	}

	return ""
}

// ValidateForSubmit re-checks the whole roster. It returns nil when the
// roster is submittable, otherwise the blocking errors: empty fields first,
// then any live per-row ID error.
func (f *Form) ValidateForSubmit(ctx context.Context) []domain.ValidationError {
	var errs []domain.ValidationError

	for i, m := range f.members {
		trimmed := domain.TeamMember{
			Name: strings.TrimSpace(m.Name),
			ID:   strings.TrimSpace(m.ID),
		}
		if err := validate.Struct(trimmed); err != nil {
			metrics.ValidationFailures.WithLabelValues("roster").Inc()
			errs = append(errs, *domain.NewValidationError(
				fmt.Sprintf("member[%d]", i), MsgEmptyMembers))
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}

	f.revalidate(ctx)
	for i, idErr := range f.idErrors {
		if idErr != "" {
			metrics.ValidationFailures.WithLabelValues("roster").Inc()
			errs = append(errs, *domain.NewValidationError(
				fmt.Sprintf("member[%d]", i), MsgRowErrors))
		}
	}

	return errs
}
