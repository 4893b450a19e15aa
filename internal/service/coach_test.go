package service

import (
	"testing"
	"time"

	"github.com/nalin-pixel/selfmastery-api/internal/docstore"
	"github.com/nalin-pixel/selfmastery-api/internal/models"

	"github.com/google/go-cmp/cmp"
)

var fixedNow = time.Date(2025, 3, 14, 6, 30, 0, 0, time.UTC)

func dummyDocs(n int) []docstore.Document {
	out := make([]docstore.Document, n)
	for i := range out {
		out[i] = docstore.Document{"user_id": "u1"}
	}
	return out
}

func TestBuildPlanFallback(t *testing.T) {
	plan := BuildPlan("u1", "", dummyDocs(3), nil, dummyDocs(5), nil, fixedNow)
	want := []string{"consistency", "deep work", "hydration"}
	if diff := cmp.Diff(want, plan.Focus); diff != "" {
		t.Fatalf("focus mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlanAllRulesFire(t *testing.T) {
	plan := BuildPlan("u1", "sad", nil, nil, dummyDocs(6), nil, fixedNow)
	want := []string{"short wins", "breathing", "walk", "prioritize top 3", "add a keystone habit"}
	if diff := cmp.Diff(want, plan.Focus); diff != "" {
		t.Fatalf("focus mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlanMoodHintOnly(t *testing.T) {
	plan := BuildPlan("u1", "stressed", dummyDocs(3), nil, dummyDocs(2), nil, fixedNow)
	want := []string{"short wins", "breathing", "walk"}
	if diff := cmp.Diff(want, plan.Focus); diff != "" {
		t.Fatalf("focus mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlanIgnoresUnlistedMood(t *testing.T) {
	plan := BuildPlan("u1", "ecstatic", dummyDocs(3), nil, dummyDocs(2), nil, fixedNow)
	want := []string{"consistency", "deep work", "hydration"}
	if diff := cmp.Diff(want, plan.Focus); diff != "" {
		t.Fatalf("focus mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlanDeterminism(t *testing.T) {
	first := BuildPlan("u1", "sad", dummyDocs(1), dummyDocs(2), dummyDocs(7), dummyDocs(3), fixedNow)
	second := BuildPlan("u1", "sad", dummyDocs(1), dummyDocs(2), dummyDocs(7), dummyDocs(3), fixedNow)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("plans differ (-first +second):\n%s", diff)
	}
	if first.Date != "2025-03-14" {
		t.Fatalf("unexpected date %q", first.Date)
	}
	if first.Summary != "Personalized plan generated." {
		t.Fatalf("unexpected summary %q", first.Summary)
	}
}

func TestBuildPlanFixedActions(t *testing.T) {
	plan := BuildPlan("u1", "", nil, nil, nil, nil, fixedNow)
	want := []models.PlanAction{
		{Title: "10-min warmup", Time: "05:15"},
		{Title: "Deep work block", Time: "06:00"},
		{Title: "Move + hydrate", Time: "08:00"},
	}
	if diff := cmp.Diff(want, plan.Actions); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
}
