package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nalin-pixel/selfmastery-api/internal/docstore"
	"github.com/nalin-pixel/selfmastery-api/internal/models"
	"github.com/nalin-pixel/selfmastery-api/internal/schema"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const planSummary = "Personalized plan generated."

// GeneratePlan snapshots the user's records, derives a plan from them and
// persists it as a new coachplan document, returning the new id. The four
// point reads run concurrently; any failure fails the whole request.
func (s *Service) GeneratePlan(ctx context.Context, userID, moodHint string) (string, error) {
	var habits, routines, tasks, moods []docstore.Document
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		habits, err = s.Store.List(gctx, schema.KindHabit, userID)
		return err
	})
	g.Go(func() error {
		var err error
		routines, err = s.Store.List(gctx, schema.KindRoutine, userID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.Store.List(gctx, schema.KindTask, userID)
		return err
	})
	g.Go(func() error {
		var err error
		moods, err = s.Store.List(gctx, schema.KindMood, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("read user state: %w", err)
	}

	recent := moods
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}
	plan := BuildPlan(userID, moodHint, habits, routines, tasks, recent, s.Now())
	s.Log.Debug("coach plan built",
		zap.String("user_id", userID),
		zap.Strings("focus", plan.Focus),
		zap.Int("habits", len(habits)),
		zap.Int("tasks", len(tasks)),
		zap.Int("recent_moods", len(recent)),
	)

	id, err := s.Store.Insert(ctx, schema.KindCoachPlan, planDocument(plan))
	if err != nil {
		return "", fmt.Errorf("insert coachplan: %w", err)
	}
	return id, nil
}

// BuildPlan evaluates the coaching rules over a snapshot of the user's
// records. Rules run in fixed order, each appending focus tags; when none
// fires the fallback list is used. routines and recentMoods are part of the
// snapshot but no current rule consults them.
func BuildPlan(userID, moodHint string, habits, routines, tasks, recentMoods []docstore.Document, now time.Time) models.CoachPlan {
	var focus []string
	if moodHint == "stressed" || moodHint == "sad" {
		focus = append(focus, "short wins", "breathing", "walk")
	}
	if len(tasks) > 5 {
		focus = append(focus, "prioritize top 3")
	}
	if len(habits) < 3 {
		focus = append(focus, "add a keystone habit")
	}
	if len(focus) == 0 {
		focus = []string{"consistency", "deep work", "hydration"}
	}
	return models.CoachPlan{
		UserID:  userID,
		Date:    now.Format("2006-01-02"),
		Summary: planSummary,
		Focus:   focus,
		Actions: defaultActions(),
	}
}

func defaultActions() []models.PlanAction {
	return []models.PlanAction{
		{Title: "10-min warmup", Time: "05:15"},
		{Title: "Deep work block", Time: "06:00"},
		{Title: "Move + hydrate", Time: "08:00"},
	}
}

func planDocument(plan models.CoachPlan) docstore.Document {
	actions := make([]map[string]any, 0, len(plan.Actions))
	for _, a := range plan.Actions {
		actions = append(actions, map[string]any{"title": a.Title, "time": a.Time})
	}
	return docstore.Document{
		"user_id": plan.UserID,
		"date":    plan.Date,
		"summary": plan.Summary,
		"focus":   plan.Focus,
		"actions": actions,
	}
}
