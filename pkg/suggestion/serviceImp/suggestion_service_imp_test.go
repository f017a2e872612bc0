package serviceImp

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"farmbot/entities"
	"farmbot/pkg/ai"
	"farmbot/pkg/climate"
	farmerRepo "farmbot/pkg/farmer/repositoryImp"
	"farmbot/pkg/suggestion/repositoryImp"
	"farmbot/pkg/suggestion/service"
)

type stubLLM struct {
	drafts []entities.SuggestionDraft
	err    error
	last   ai.SuggestionRequest
}

func (s *stubLLM) Name() string { return "stub" }

func (s *stubLLM) Answer(context.Context, string, *entities.Farmer) (string, error) { return "", nil }

func (s *stubLLM) ProposeSuggestions(_ context.Context, _ *entities.Farmer, req ai.SuggestionRequest) ([]entities.SuggestionDraft, error) {
	s.last = req
	return s.drafts, s.err
}

var augustNow = time.Date(2025, time.August, 20, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T, llm ai.Client) (service.SuggestionService, *entities.Farmer) {
	t.Helper()
	farmers := farmerRepo.NewMemory()
	f := &entities.Farmer{Name: "Babu", District: "Wayanad", LandType: "upland", Crops: []string{"Pepper", "Banana"}, Experience: "new"}
	require.NoError(t, farmers.Create(context.Background(), f))
	svc := NewSuggestionService(repositoryImp.NewMemory(), farmers, llm, climate.New(nil), zap.NewNop(),
		func() time.Time { return augustNow })
	return svc, f
}

func TestGenerateInitialFromLLM(t *testing.T) {
	llm := &stubLLM{drafts: []entities.SuggestionDraft{
		{Title: "Stake pepper vines", Priority: entities.PriorityHigh, Category: entities.CategoryCare},
		{Title: "Drain banana beds", Priority: entities.PriorityMedium, Category: entities.CategoryIrrigation},
	}}
	svc, f := setup(t, llm)

	got, err := svc.GenerateInitial(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ai.SuggestionRequest{Count: 3, Month: 8, Season: climate.SeasonMonsoon}, llm.last)
	assert.Equal(t, augustNow.AddDate(0, 0, 7), *got[0].DueDate)

	list, err := svc.List(context.Background(), f.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Stake pepper vines", list[0].Title)
	assert.Equal(t, entities.CategoryIrrigation, list[1].Category)
}

func TestGenerateInitialFallsBackToCalendar(t *testing.T) {
	svc, f := setup(t, &stubLLM{err: errors.New("no key")})

	got, err := svc.GenerateInitial(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// August: banana harvest, then season activities
	assert.Equal(t, "Harvest Banana", got[0].Title)
	assert.Equal(t, "Plant rice and other monsoon crops", got[1].Title)
}

func TestGenerateSeasonal(t *testing.T) {
	llm := &stubLLM{drafts: []entities.SuggestionDraft{
		{Title: "Weed paths", Priority: entities.PriorityLow, Category: entities.CategoryCare},
	}}
	svc, f := setup(t, llm)

	list, err := svc.Generate(context.Background(), f.ID, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entities.CategorySeasonal, list[0].Category)
	assert.Equal(t, augustNow.AddDate(0, 0, 14), *list[0].DueDate)
	assert.Equal(t, ai.FocusSeasonal, llm.last.Focus)

	llm.drafts = nil
	list, err = svc.Generate(context.Background(), f.ID, "")
	require.NoError(t, err)
	assert.Len(t, list, 4)

	_, err = svc.Generate(context.Background(), "ghost", ai.FocusSeasonal)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestGenerateDailyKeepsDraftCategory(t *testing.T) {
	llm := &stubLLM{drafts: []entities.SuggestionDraft{
		{Title: "Check pepper for foot rot", Priority: entities.PriorityMedium, Category: entities.CategoryPest},
	}}
	svc, f := setup(t, llm)

	list, err := svc.Generate(context.Background(), f.ID, ai.FocusDaily)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ai.FocusDaily, llm.last.Focus)
	assert.Equal(t, entities.CategoryPest, list[0].Category)
	assert.Equal(t, augustNow.AddDate(0, 0, 3), *list[0].DueDate)
}

func TestGenerateEmergencyFallsBackToUrgentTasks(t *testing.T) {
	llm := &stubLLM{err: errors.New("quota")}
	svc, f := setup(t, llm)

	list, err := svc.Generate(context.Background(), f.ID, ai.FocusEmergency)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, ai.FocusEmergency, llm.last.Focus)
	for _, s := range list {
		assert.Equal(t, entities.PriorityHigh, s.Priority, s.Title)
		assert.Equal(t, augustNow.Add(24*time.Hour), *s.DueDate)
	}
}

func TestGenerateRejectsUnknownFocus(t *testing.T) {
	llm := &stubLLM{}
	svc, f := setup(t, llm)

	_, err := svc.Generate(context.Background(), f.ID, "weekly")
	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors[0], "focus must be one of")
	assert.Empty(t, llm.last.Focus, "no llm call for a bad focus")
}

func TestUpdate(t *testing.T) {
	svc, f := setup(t, &stubLLM{drafts: []entities.SuggestionDraft{{Title: "Prune", Priority: "low", Category: "care"}}})
	created, err := svc.GenerateInitial(context.Background(), f)
	require.NoError(t, err)
	id := created[0].ID

	done := true
	got, err := svc.Update(context.Background(), id, entities.SuggestionPatch{IsCompleted: &done})
	require.NoError(t, err)
	assert.True(t, got.IsCompleted)
	assert.Equal(t, "Prune", got.Title)

	bad := "urgent"
	_, err = svc.Update(context.Background(), id, entities.SuggestionPatch{Priority: &bad, Category: &bad})
	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 2)

	_, err = svc.Update(context.Background(), "missing", entities.SuggestionPatch{IsCompleted: &done})
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestExport(t *testing.T) {
	svc, f := setup(t, &stubLLM{drafts: []entities.SuggestionDraft{
		{Title: "Prune", Description: "Cut dead wood", Priority: "low", Category: "care"},
	}})
	_, err := svc.GenerateInitial(context.Background(), f)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), f.ID, &buf))

	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows("Suggestions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Title", rows[0][0])
	assert.Equal(t, []string{"Prune", "Cut dead wood", "low", "care", "no", "2025-08-27"}, rows[1][:6])

	assert.ErrorIs(t, svc.Export(context.Background(), "ghost", &buf), entities.ErrNotFound)
}
