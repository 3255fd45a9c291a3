package service

import (
	"context"
	"testing"

	"betdiary/internal/apperr"
)

func TestListMergesDefaultsAndCustoms(t *testing.T) {
	repo := newStubRepo()
	svc := &OptionsService{Repo: repo}

	added, err := svc.Add(context.Background(), FieldEmotionalState, "Revenge mode")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	values, err := svc.List(context.Background(), FieldEmotionalState)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	wantLen := len(defaultOptions[FieldEmotionalState]) + 1
	if len(values) != wantLen {
		t.Fatalf("len = %d, want %d", len(values), wantLen)
	}
	if values[0].Value != "Calm" || !values[0].Default {
		t.Fatalf("defaults must come first, got %+v", values[0])
	}
	last := values[len(values)-1]
	if last.Value != "Revenge mode" || last.Default || last.ID == nil || *last.ID != added.ID {
		t.Fatalf("custom value misplaced or unlabelled: %+v", last)
	}
}

func TestAddRejectsDefaultCollision(t *testing.T) {
	svc := &OptionsService{Repo: newStubRepo()}
	// Accent and case variants of the default "Calm".
	for _, v := range []string{"calm", "  CALM ", "Cálm"} {
		_, err := svc.Add(context.Background(), FieldEmotionalState, v)
		if apperr.KindOf(err) != apperr.KindConflict {
			t.Fatalf("Add(%q): got %v, want conflict", v, err)
		}
	}
}

func TestAddRejectsCustomCollision(t *testing.T) {
	svc := &OptionsService{Repo: newStubRepo()}
	if _, err := svc.Add(context.Background(), FieldEntryMotivation, "Gut feeling"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	_, err := svc.Add(context.Background(), FieldEntryMotivation, "gut  FEELING")
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("got %v, want conflict", err)
	}
}

func TestAddAssignsIncreasingSortOrder(t *testing.T) {
	svc := &OptionsService{Repo: newStubRepo()}
	a, err := svc.Add(context.Background(), FieldSelfAssessment, "Reckless")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	b, err := svc.Add(context.Background(), FieldSelfAssessment, "Methodical")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if b.SortOrder <= a.SortOrder {
		t.Fatalf("sort order not increasing: %d then %d", a.SortOrder, b.SortOrder)
	}
}

func TestAddUnknownField(t *testing.T) {
	svc := &OptionsService{Repo: newStubRepo()}
	_, err := svc.Add(context.Background(), "mood_ring", "Purple")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("got %v, want validation", err)
	}
}

func TestRemoveCustomOption(t *testing.T) {
	repo := newStubRepo()
	svc := &OptionsService{Repo: repo}
	added, err := svc.Add(context.Background(), FieldExpectedTendency, "Both teams score")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Remove(context.Background(), FieldExpectedTendency, added.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	values, _ := svc.List(context.Background(), FieldExpectedTendency)
	if len(values) != len(defaultOptions[FieldExpectedTendency]) {
		t.Fatalf("custom value not removed")
	}
}

func TestRemoveFieldMismatch(t *testing.T) {
	repo := newStubRepo()
	svc := &OptionsService{Repo: repo}
	added, err := svc.Add(context.Background(), FieldEmotionalState, "Zen")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	err = svc.Remove(context.Background(), FieldSelfAssessment, added.ID)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("got %v, want not found", err)
	}
}
