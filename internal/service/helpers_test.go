package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/daybreak/internal/clock"
	"github.com/alexanderramin/daybreak/internal/intelligence"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/store"
	"github.com/alexanderramin/daybreak/internal/testutil"
)

func setupStore(t *testing.T) *store.DayStore {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDayRecordRepo(database, nil)
	return store.NewDayStore(context.Background(), repo, nil)
}

// fakeGateway returns canned results instead of calling a model.
type fakeGateway struct {
	generateResult *intelligence.PlanResult
	replanResult   *intelligence.PlanResult
	chatResult     *intelligence.ChatResult
	err            error

	lastRequest intelligence.PlanRequest
	calls       int
}

func (f *fakeGateway) Generate(ctx context.Context, req intelligence.PlanRequest) (*intelligence.PlanResult, error) {
	f.lastRequest = req
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.generateResult, nil
}

func (f *fakeGateway) Replan(ctx context.Context, req intelligence.PlanRequest) (*intelligence.PlanResult, error) {
	f.lastRequest = req
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.replanResult, nil
}

func (f *fakeGateway) ChatToSchedule(ctx context.Context, conv []intelligence.ConversationTurn, userMessage string) (*intelligence.ChatResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.chatResult, nil
}

func fixedClock(date, hhmm string) clock.Clock {
	return clock.Fixed{Date: date, Time: hhmm}
}
