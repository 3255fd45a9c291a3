package service

import (
	"context"
	"strings"

	"betdiary/internal/apperr"
	"betdiary/internal/models"
	"betdiary/internal/repository"
)

// Logical fields whose value lists users may extend.
const (
	FieldEmotionalState   = "emotional_state"
	FieldEntryMotivation  = "entry_motivation"
	FieldSelfAssessment   = "self_assessment"
	FieldExpectedTendency = "expected_tendency"
)

// defaultOptions are the built-in values per field, in fixed display
// order. They are not stored; read paths union them with custom rows.
var defaultOptions = map[string][]string{
	FieldEmotionalState: {
		"Calm",
		"Confident",
		"Anxious",
		"Euphoric",
		"Frustrated",
		"Tired",
	},
	FieldEntryMotivation: {
		"Planned entry",
		"Perceived value",
		"Recovering loss",
		"Impulse",
		"Following tip",
	},
	FieldSelfAssessment: {
		"Disciplined",
		"Neutral",
		"Undisciplined",
	},
	FieldExpectedTendency: {
		"Home win",
		"Draw",
		"Away win",
		"Over goals",
		"Under goals",
	},
}

// OptionValue is one entry of the merged default+custom list. Custom
// values carry their row id so they can be removed; defaults cannot.
type OptionValue struct {
	Value   string  `json:"value"`
	Default bool    `json:"default"`
	ID      *uint64 `json:"id,omitempty"`
}

// OptionsService merges the hard-coded defaults with user-added custom
// values. Defaults always come first in source order; custom values
// follow in stored order then alphabetically.
type OptionsService struct {
	Repo repository.Repository
}

func knownField(field string) bool {
	_, ok := defaultOptions[field]
	return ok
}

func (s *OptionsService) List(ctx context.Context, field string) ([]OptionValue, error) {
	if s == nil || s.Repo == nil {
		return nil, apperr.Internal(nil)
	}
	field = strings.TrimSpace(field)
	if !knownField(field) {
		return nil, apperr.Validation("unknown option field %q", field)
	}
	out := make([]OptionValue, 0, len(defaultOptions[field]))
	for _, v := range defaultOptions[field] {
		out = append(out, OptionValue{Value: v, Default: true})
	}
	customs, err := s.Repo.ListCustomOptions(ctx, field)
	if err != nil {
		return nil, err
	}
	for _, c := range customs {
		id := c.ID
		out = append(out, OptionValue{Value: c.Value, ID: &id})
	}
	return out, nil
}

// Add appends a custom value. A value colliding (case/accent-insensitively)
// with a default or an existing custom for the same field is rejected.
func (s *OptionsService) Add(ctx context.Context, field, value string) (*models.CustomOption, error) {
	if s == nil || s.Repo == nil {
		return nil, apperr.Internal(nil)
	}
	field = strings.TrimSpace(field)
	value = strings.TrimSpace(value)
	if !knownField(field) {
		return nil, apperr.Validation("unknown option field %q", field)
	}
	if value == "" {
		return nil, apperr.Validation("value is required")
	}
	norm := models.NormalizeName(value)
	for _, v := range defaultOptions[field] {
		if models.NormalizeName(v) == norm {
			return nil, apperr.Conflict("%q is already a default value for %s", value, field)
		}
	}
	customs, err := s.Repo.ListCustomOptions(ctx, field)
	if err != nil {
		return nil, err
	}
	maxOrder := 0
	for _, c := range customs {
		if c.NormValue == norm {
			return nil, apperr.Conflict("%q already exists for %s", value, field)
		}
		if c.SortOrder > maxOrder {
			maxOrder = c.SortOrder
		}
	}
	item := &models.CustomOption{
		Field:     field,
		Value:     value,
		SortOrder: maxOrder + 1,
	}
	if err := s.Repo.CreateCustomOption(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove deletes a custom value by row id. Defaults have no row, so
// they are structurally unremovable; a field mismatch is treated as
// not found rather than deleting across fields.
func (s *OptionsService) Remove(ctx context.Context, field string, id uint64) error {
	if s == nil || s.Repo == nil {
		return apperr.Internal(nil)
	}
	field = strings.TrimSpace(field)
	if !knownField(field) {
		return apperr.Validation("unknown option field %q", field)
	}
	item, err := s.Repo.GetCustomOptionByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil || item.Field != field {
		return apperr.NotFound("option %d not found for %s", id, field)
	}
	return s.Repo.DeleteCustomOption(ctx, id)
}
