package github

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jekwwer/repolint/pkg/labels"
)

// Plan describes how a repository's labels differ from a desired set.
type Plan struct {
	Create []labels.Label
	Update []labels.Label
	Delete []labels.Label
	Keep   []labels.Label
}

func (p Plan) Empty() bool {
	return len(p.Create) == 0 && len(p.Update) == 0 && len(p.Delete) == 0
}

func (p Plan) String() string {
	return fmt.Sprintf("%d to create, %d to update, %d to delete, %d in sync",
		len(p.Create), len(p.Update), len(p.Delete), len(p.Keep))
}

// BuildPlan diffs the current remote labels against the desired set. A label
// with a matching name but a different color or description is updated in
// place so issue references survive the sync.
func BuildPlan(current, desired []labels.Label) Plan {
	var plan Plan

	remote := make(map[string]labels.Label, len(current))
	for _, l := range current {
		remote[l.Name] = l
	}

	wanted := make(map[string]bool, len(desired))
	for _, want := range desired {
		wanted[want.Name] = true

		have, exists := remote[want.Name]
		switch {
		case !exists:
			plan.Create = append(plan.Create, want)
		case !want.SameColor(have.Color) || want.Description != have.Description:
			plan.Update = append(plan.Update, want)
		default:
			plan.Keep = append(plan.Keep, want)
		}
	}

	for _, have := range current {
		if !wanted[have.Name] {
			plan.Delete = append(plan.Delete, have)
		}
	}

	return plan
}

// Syncer applies a label plan against a repository.
type Syncer struct {
	client *Client
	logger zerolog.Logger
}

func NewSyncer(client *Client, logger zerolog.Logger) *Syncer {
	return &Syncer{
		client: client,
		logger: logger,
	}
}

// Sync reconciles the repository's labels with the desired set. Each desired
// label is validated before any mutation is sent.
func (s *Syncer) Sync(desired []labels.Label) (Plan, error) {
	for _, l := range desired {
		if err := labels.Validate(l); err != nil {
			return Plan{}, err
		}
	}

	current, err := s.client.ListLabels()
	if err != nil {
		return Plan{}, fmt.Errorf("failed to list labels: %w", err)
	}

	plan := BuildPlan(current, desired)

	for _, l := range plan.Delete {
		if err := s.client.DeleteLabel(l.Name); err != nil {
			return plan, err
		}
		s.logger.Info().Str("label", l.Name).Msg("deleted label")
	}

	for _, l := range plan.Update {
		if err := s.client.UpdateLabel(l); err != nil {
			return plan, err
		}
		s.logger.Info().Str("label", l.Name).Msg("updated label")
	}

	for _, l := range plan.Create {
		if err := s.client.CreateLabel(l); err != nil {
			return plan, err
		}
		s.logger.Info().Str("label", l.Name).Msg("created label")
	}

	return plan, nil
}

// Clear removes every label from the repository.
func (s *Syncer) Clear() (int, error) {
	current, err := s.client.ListLabels()
	if err != nil {
		return 0, fmt.Errorf("failed to list labels: %w", err)
	}

	for i, l := range current {
		if err := s.client.DeleteLabel(l.Name); err != nil {
			return i, err
		}
		s.logger.Info().Str("label", l.Name).Msg("deleted label")
	}

	return len(current), nil
}
