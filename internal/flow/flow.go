// Package flow runs the post-login routing sequence: fetch the profile, store
// it, decide the landing screen and navigate or hand off.
package flow

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"hrflow/internal/navigation"
	"hrflow/internal/profile"
	"hrflow/internal/session"
)

// Outcome actions.
const (
	ActionNavigate = "navigate"
	ActionHandoff  = "handoff"
)

// Handoff receives records that no route rule matched.
type Handoff interface {
	HandleEmployee(ctx context.Context, h navigation.Handoff) error
}

// HandoffFunc adapts a function to Handoff.
type HandoffFunc func(ctx context.Context, h navigation.Handoff) error

// HandleEmployee calls f.
func (f HandoffFunc) HandleEmployee(ctx context.Context, h navigation.Handoff) error {
	return f(ctx, h)
}

// Outcome describes what Run did.
type Outcome struct {
	Action  string              `json:"action"`
	Target  *navigation.Target  `json:"target,omitempty"`
	Handoff *navigation.Handoff `json:"handoff,omitempty"`
	// Changed is false when the session was already on Target.
	Changed bool `json:"changed"`
}

// Flow wires the fetcher and handoff collaborators around navigation.Decide.
type Flow struct {
	fetcher profile.Fetcher
	handoff Handoff
	log     zerolog.Logger
}

// New builds a Flow. A nil handoff leaves handoffs to the caller via Outcome.
func New(fetcher profile.Fetcher, handoff Handoff, log zerolog.Logger) *Flow {
	return &Flow{fetcher: fetcher, handoff: handoff, log: log}
}

// Run executes one fetch-decide-navigate sequence for employee id within sess.
// Fetch errors are returned unchanged and leave the session untouched. The
// fetched record is stored before the decision, so an invalid record replaces
// the profile but never changes the screen.
func (f *Flow) Run(ctx context.Context, sess *session.Session, id string) (Outcome, error) {
	rec, err := f.fetcher.Fetch(ctx, id)
	if err != nil {
		return Outcome{}, err
	}

	if err := sess.Profile.Set(ctx, rec); err != nil {
		return Outcome{}, fmt.Errorf("store profile: %w", err)
	}

	decision, err := navigation.Decide(rec)
	if err != nil {
		return Outcome{}, fmt.Errorf("decide route for %q: %w", id, err)
	}

	if decision.NoOp() {
		f.log.Info().
			Str("session", sess.ID).
			Str("emp_id", rec.ID).
			Str("role", rec.Role).
			Str("company", rec.Company).
			Msg("no route rule matched, handing off")
		if f.handoff != nil {
			if err := f.handoff.HandleEmployee(ctx, *decision.Handoff); err != nil {
				return Outcome{}, fmt.Errorf("handoff %q: %w", rec.ID, err)
			}
		}
		return Outcome{Action: ActionHandoff, Handoff: decision.Handoff}, nil
	}

	changed, err := sess.Screen.Navigate(ctx, *decision.Target)
	if err != nil {
		return Outcome{}, fmt.Errorf("navigate to %s: %w", decision.Target.Route, err)
	}

	f.log.Debug().
		Str("session", sess.ID).
		Str("emp_id", rec.ID).
		Str("route", decision.Target.Route).
		Bool("changed", changed).
		Msg("route decided")

	return Outcome{Action: ActionNavigate, Target: decision.Target, Changed: changed}, nil
}
