package tryon

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrastudio/vastra-backend/models"
)

type fakeSynth struct {
	mu    sync.Mutex
	calls []synthCall
	err   error
	// block, when non-nil, is closed by the test to release pending calls.
	block chan struct{}
}

type synthCall struct {
	garments    []string
	angle       models.CameraAngle
	colorPrompt string
}

func (s *fakeSynth) GenerateTryOn(ctx context.Context, portrait string, garments []string, angle models.CameraAngle, analysis *models.BodyAnalysis, colorPrompt string) ([]byte, error) {
	s.mu.Lock()
	s.calls = append(s.calls, synthCall{garments: garments, angle: angle, colorPrompt: colorPrompt})
	n := len(s.calls)
	block := s.block
	err := s.err
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("render-%d-%s", n, angle)), nil
}

type fakeImages struct{}

func (fakeImages) SaveResult(ctx context.Context, userID string, image []byte) (string, error) {
	return "results/" + userID + "/" + string(image), nil
}

type fakeRecorder struct {
	mu       sync.Mutex
	portrait string
	analysis *models.BodyAnalysis
	history  []models.TryOnSession
	looks    []models.SavedLook
}

func (r *fakeRecorder) Portrait(ctx context.Context, userID string) (string, error) {
	return r.portrait, nil
}

func (r *fakeRecorder) Analysis(ctx context.Context, userID string) (*models.BodyAnalysis, error) {
	return r.analysis, nil
}

func (r *fakeRecorder) AppendHistory(ctx context.Context, userID string, entry models.TryOnSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append([]models.TryOnSession{entry}, r.history...)
	return nil
}

func (r *fakeRecorder) SaveLook(ctx context.Context, userID string, look models.SavedLook) (models.SavedLook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	look.ID = fmt.Sprintf("look-%d", len(r.looks)+1)
	r.looks = append([]models.SavedLook{look}, r.looks...)
	return look, nil
}

var (
	anarkali = models.ClothingItem{ID: "fs-1", Name: "Royal Banarasi Silk", Price: 24500, Gender: models.GenderFemale}
	lehenga  = models.ClothingItem{ID: "fl-1", Name: "Crimson Velvet Lehenga", Price: 85000, Gender: models.GenderFemale}
)

func newTestOrchestrator() (*Orchestrator, *fakeSynth, *fakeRecorder) {
	synth := &fakeSynth{}
	rec := &fakeRecorder{
		portrait: "portraits/u1.png",
		analysis: &models.BodyAnalysis{Gender: models.GenderFemale, SkinTone: "Fair", BodyShape: models.ShapeHourglass},
	}
	return NewOrchestrator(synth, fakeImages{}, rec), synth, rec
}

func TestRequestTryOnNoPortrait(t *testing.T) {
	o, _, rec := newTestOrchestrator()
	rec.portrait = ""
	_, err := o.RequestTryOn(context.Background(), "u1", models.AngleFront, &anarkali, nil)
	assert.ErrorIs(t, err, models.ErrNoPortrait)
}

func TestRequestTryOnNoGarment(t *testing.T) {
	o, _, _ := newTestOrchestrator()
	_, err := o.RequestTryOn(context.Background(), "u1", models.AngleFront, nil, nil)
	assert.ErrorIs(t, err, models.ErrNoGarment)
}

func TestSelectGarmentRendersFront(t *testing.T) {
	o, synth, rec := newTestOrchestrator()
	st, err := o.SelectGarment(context.Background(), "u1", anarkali)
	require.NoError(t, err)

	assert.Equal(t, []models.ClothingItem{anarkali}, st.Selection)
	assert.Nil(t, st.Color)
	assert.Equal(t, models.AngleFront, st.ActiveAngle)
	require.Contains(t, st.Results, models.AngleFront)
	assert.Empty(t, st.Generating)

	require.Len(t, synth.calls, 1)
	assert.Equal(t, []string{"Royal Banarasi Silk"}, synth.calls[0].garments)
	assert.Equal(t, models.AngleFront, synth.calls[0].angle)

	// Front success with an analysis present records a session.
	require.Len(t, rec.history, 1)
	assert.Equal(t, []models.ClothingItem{anarkali}, rec.history[0].ClothingItems)
	assert.Equal(t, models.ShapeHourglass, rec.history[0].Analysis.BodyShape)
}

func TestNonFrontAnglesSkipHistory(t *testing.T) {
	o, _, rec := newTestOrchestrator()
	ctx := context.Background()
	_, err := o.SelectGarment(ctx, "u1", anarkali)
	require.NoError(t, err)
	require.Len(t, rec.history, 1)

	for _, angle := range []models.CameraAngle{models.AngleSide, models.AngleBack, models.AngleCloseUp, models.Angle360} {
		_, err := o.RequestTryOn(ctx, "u1", angle, nil, nil)
		require.NoError(t, err)
	}
	assert.Len(t, rec.history, 1)
}

func TestFrontWithoutAnalysisSkipsHistory(t *testing.T) {
	o, _, rec := newTestOrchestrator()
	rec.analysis = nil
	_, err := o.SelectGarment(context.Background(), "u1", anarkali)
	require.NoError(t, err)
	assert.Empty(t, rec.history)
}

func TestAngleCacheIsolation(t *testing.T) {
	o, _, _ := newTestOrchestrator()
	ctx := context.Background()
	_, err := o.SelectGarment(ctx, "u1", anarkali)
	require.NoError(t, err)

	st, err := o.RequestTryOn(ctx, "u1", models.AngleSide, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, st.Results, models.AngleFront)
	assert.Contains(t, st.Results, models.AngleSide)

	// Selecting a new garment clears every cached angle.
	st, err = o.SelectGarment(ctx, "u1", lehenga)
	require.NoError(t, err)
	assert.NotContains(t, st.Results, models.AngleSide)
	require.Contains(t, st.Results, models.AngleFront)
	assert.Equal(t, []models.ClothingItem{lehenga}, st.Selection)
}

func TestChangeColorReRendersActiveAngleOnly(t *testing.T) {
	o, synth, _ := newTestOrchestrator()
	ctx := context.Background()
	_, err := o.SelectGarment(ctx, "u1", anarkali)
	require.NoError(t, err)
	_, err = o.RequestTryOn(ctx, "u1", models.AngleSide, nil, nil)
	require.NoError(t, err)
	sideImage := o.State("u1").Results[models.AngleSide].Image

	o.SetActiveAngle("u1", models.AngleFront)
	emerald := models.ColorSwatch{Name: "Emerald Green", Hex: "#0E5C44", Prompt: "a deep emerald green"}
	st, err := o.ChangeColor(ctx, "u1", emerald)
	require.NoError(t, err)

	last := synth.calls[len(synth.calls)-1]
	assert.Equal(t, models.AngleFront, last.angle)
	assert.Equal(t, "a deep emerald green", last.colorPrompt)

	require.Contains(t, st.Results, models.AngleFront)
	assert.Equal(t, &emerald, st.Results[models.AngleFront].Color)
	// The side render is stale but kept, with its original color on record.
	assert.Equal(t, sideImage, st.Results[models.AngleSide].Image)
	assert.Nil(t, st.Results[models.AngleSide].Color)
}

func TestSynthFailureKeepsCache(t *testing.T) {
	o, synth, _ := newTestOrchestrator()
	ctx := context.Background()
	_, err := o.SelectGarment(ctx, "u1", anarkali)
	require.NoError(t, err)
	front := o.State("u1").Results[models.AngleFront]

	synth.err = errors.New("content policy rejection")
	st, err := o.RequestTryOn(ctx, "u1", models.AngleFront, nil, nil)
	assert.ErrorIs(t, err, models.ErrTryOnFailed)
	assert.Contains(t, st.LastError, "content policy rejection")
	assert.Equal(t, front, st.Results[models.AngleFront])
	assert.Empty(t, st.Generating)
}

func TestStaleEpochResolutionDiscarded(t *testing.T) {
	o, synth, _ := newTestOrchestrator()
	ctx := context.Background()
	_, err := o.SelectGarment(ctx, "u1", anarkali)
	require.NoError(t, err)

	// Hold a side render in flight while the garment changes underneath it.
	block := make(chan struct{})
	synth.mu.Lock()
	synth.block = block
	synth.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = o.RequestTryOn(ctx, "u1", models.AngleSide, nil, nil)
	}()
	require.Eventually(t, func() bool {
		return len(o.State("u1").Generating) > 0
	}, 2*time.Second, time.Millisecond)

	// Let the new garment's front render through, then release the stale one.
	synth.mu.Lock()
	synth.block = nil
	synth.mu.Unlock()
	front, err := o.SelectGarment(ctx, "u1", lehenga)
	require.NoError(t, err)
	require.Contains(t, front.Results, models.AngleFront)

	close(block)
	<-done

	// The stale side render must not appear against the new garment.
	st := o.State("u1")
	assert.NotContains(t, st.Results, models.AngleSide)
	assert.Equal(t, []models.ClothingItem{lehenga}, st.Selection)
	assert.Empty(t, st.Generating)
}

func TestSlowRenderCannotOverwriteNewerOne(t *testing.T) {
	o, synth, _ := newTestOrchestrator()
	ctx := context.Background()
	_, err := o.SelectGarment(ctx, "u1", anarkali)
	require.NoError(t, err)

	// Hold the first side render in flight while a second one lands.
	block := make(chan struct{})
	synth.mu.Lock()
	synth.block = block
	synth.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = o.RequestTryOn(ctx, "u1", models.AngleSide, nil, nil)
	}()
	require.Eventually(t, func() bool {
		return len(o.State("u1").Generating) > 0
	}, 2*time.Second, time.Millisecond)

	synth.mu.Lock()
	synth.block = nil
	synth.mu.Unlock()
	newer, err := o.RequestTryOn(ctx, "u1", models.AngleSide, nil, nil)
	require.NoError(t, err)
	newerImage := newer.Results[models.AngleSide].Image
	require.NotEmpty(t, newerImage)

	close(block)
	<-done

	// The slow early render resolves last but must not win the cache.
	st := o.State("u1")
	assert.Equal(t, newerImage, st.Results[models.AngleSide].Image)
	assert.Empty(t, st.Generating)
	assert.Empty(t, st.LastError)
}

func TestSaveToCloset(t *testing.T) {
	o, _, rec := newTestOrchestrator()
	ctx := context.Background()

	_, err := o.SaveToCloset(ctx, "u1", "", nil)
	assert.ErrorIs(t, err, models.ErrNoGarment)

	_, err = o.SelectGarment(ctx, "u1", anarkali)
	require.NoError(t, err)

	look, err := o.SaveToCloset(ctx, "u1", "wedding option", []string{"festive"})
	require.NoError(t, err)
	assert.Equal(t, anarkali, look.ClothingItem)
	assert.Equal(t, models.AngleFront, look.Angle)
	assert.Equal(t, "wedding option", look.Notes)
	require.NotNil(t, look.Analysis)
	assert.Equal(t, models.ShapeHourglass, look.Analysis.BodyShape)
	require.Len(t, rec.looks, 1)

	// No cached render for the newly viewed angle yet.
	o.SetActiveAngle("u1", models.Angle360)
	_, err = o.SaveToCloset(ctx, "u1", "", nil)
	assert.ErrorIs(t, err, models.ErrLookNotFound)
}

func TestClosetSnapshotIsolation(t *testing.T) {
	o, _, rec := newTestOrchestrator()
	ctx := context.Background()
	item := anarkali
	_, err := o.SelectGarment(ctx, "u1", item)
	require.NoError(t, err)
	_, err = o.SaveToCloset(ctx, "u1", "", nil)
	require.NoError(t, err)

	item.Name = "Renamed"
	item.Price = 1
	assert.Equal(t, "Royal Banarasi Silk", rec.looks[0].ClothingItem.Name)
	assert.Equal(t, 24500, rec.looks[0].ClothingItem.Price)
}

func TestDropForgetsFitting(t *testing.T) {
	o, _, _ := newTestOrchestrator()
	_, err := o.SelectGarment(context.Background(), "u1", anarkali)
	require.NoError(t, err)

	o.Drop("u1")
	st := o.State("u1")
	assert.Empty(t, st.Selection)
	assert.Empty(t, st.Results)
	assert.Equal(t, models.AngleFront, st.ActiveAngle)
}
