// Package tryon coordinates garment fitting against the image synthesis
// collaborator. It tracks one fitting per user: the selected garment, the
// chosen color, and a per-angle cache of rendered results.
package tryon

import (
	"context"
	"fmt"
	"sync"

	"github.com/vastrastudio/vastra-backend/models"
)

// Synthesizer renders a try-on composite. portrait is a stored object key,
// URL or data URI; the implementation resolves it. Returns raw image bytes.
type Synthesizer interface {
	GenerateTryOn(ctx context.Context, portrait string, garments []string, angle models.CameraAngle, analysis *models.BodyAnalysis, colorPrompt string) ([]byte, error)
}

// ImageStore persists rendered composites and returns a stored object key.
type ImageStore interface {
	SaveResult(ctx context.Context, userID string, image []byte) (string, error)
}

// Recorder is the session-side collaborator: it supplies the portrait and
// analysis and receives completed sessions and saved looks.
type Recorder interface {
	Portrait(ctx context.Context, userID string) (string, error)
	Analysis(ctx context.Context, userID string) (*models.BodyAnalysis, error)
	AppendHistory(ctx context.Context, userID string, entry models.TryOnSession) error
	SaveLook(ctx context.Context, userID string, look models.SavedLook) (models.SavedLook, error)
}

// AngleResult is one cached render. Color records the swatch the render
// was made with; a color change re-renders only the active angle, so other
// cached angles may carry an older color until revisited.
type AngleResult struct {
	Image string              `json:"image"`
	Color *models.ColorSwatch `json:"color,omitempty"`
}

// FittingState is a point-in-time snapshot of a user's fitting.
type FittingState struct {
	Selection   []models.ClothingItem              `json:"selection"`
	Color       *models.ColorSwatch                `json:"color,omitempty"`
	ActiveAngle models.CameraAngle                 `json:"activeAngle"`
	Results     map[models.CameraAngle]AngleResult `json:"results"`
	Generating  []models.CameraAngle               `json:"generating"`
	LastError   string                             `json:"lastError,omitempty"`
}

// fitting is the mutable per-user state. epoch bumps on every garment
// selection; a render started under an older epoch is discarded when it
// resolves. seq orders concurrent renders of the same angle so a slow
// early request cannot overwrite a later one.
type fitting struct {
	selection []models.ClothingItem
	color     *models.ColorSwatch
	active    models.CameraAngle
	results   map[models.CameraAngle]AngleResult
	inflight  map[models.CameraAngle]int
	lastErr   string

	epoch   uint64
	seq     map[models.CameraAngle]uint64
	applied map[models.CameraAngle]uint64
}

func newFitting() *fitting {
	return &fitting{
		active:   models.AngleFront,
		results:  make(map[models.CameraAngle]AngleResult),
		inflight: make(map[models.CameraAngle]int),
		seq:      make(map[models.CameraAngle]uint64),
		applied:  make(map[models.CameraAngle]uint64),
	}
}

// Orchestrator runs the fitting state machine. All methods are safe for
// concurrent use; the lock is released around collaborator calls so one
// slow render never blocks other users or other angles.
type Orchestrator struct {
	synth    Synthesizer
	images   ImageStore
	recorder Recorder

	mu       sync.Mutex
	fittings map[string]*fitting
}

func NewOrchestrator(synth Synthesizer, images ImageStore, recorder Recorder) *Orchestrator {
	return &Orchestrator{
		synth:    synth,
		images:   images,
		recorder: recorder,
		fittings: make(map[string]*fitting),
	}
}

func (o *Orchestrator) fitting(userID string) *fitting {
	f, ok := o.fittings[userID]
	if !ok {
		f = newFitting()
		o.fittings[userID] = f
	}
	return f
}

func (f *fitting) snapshot() FittingState {
	st := FittingState{
		Selection:   append([]models.ClothingItem(nil), f.selection...),
		Color:       f.color,
		ActiveAngle: f.active,
		Results:     make(map[models.CameraAngle]AngleResult, len(f.results)),
		LastError:   f.lastErr,
	}
	for angle, r := range f.results {
		st.Results[angle] = r
	}
	for _, angle := range models.CameraAngles {
		if f.inflight[angle] > 0 {
			st.Generating = append(st.Generating, angle)
		}
	}
	return st
}

// State returns the current fitting snapshot for a user.
func (o *Orchestrator) State(userID string) FittingState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.fitting(userID).snapshot()
}

// Drop discards a user's fitting state. Called on sign-out.
func (o *Orchestrator) Drop(userID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.fittings, userID)
}

// SelectGarment replaces the selection with the single given garment,
// clears the chosen color and every cached angle, resets the active angle
// to Front and immediately renders the Front view.
func (o *Orchestrator) SelectGarment(ctx context.Context, userID string, item models.ClothingItem) (FittingState, error) {
	o.mu.Lock()
	f := o.fitting(userID)
	f.epoch++
	f.selection = []models.ClothingItem{item}
	f.color = nil
	f.active = models.AngleFront
	f.results = make(map[models.CameraAngle]AngleResult)
	f.seq = make(map[models.CameraAngle]uint64)
	f.applied = make(map[models.CameraAngle]uint64)
	f.lastErr = ""
	o.mu.Unlock()

	return o.RequestTryOn(ctx, userID, models.AngleFront, nil, nil)
}

// ChangeColor records the swatch and re-renders only the active angle.
// Other cached angles keep their previous color until re-requested.
func (o *Orchestrator) ChangeColor(ctx context.Context, userID string, color models.ColorSwatch) (FittingState, error) {
	o.mu.Lock()
	f := o.fitting(userID)
	f.color = &color
	active := f.active
	o.mu.Unlock()

	return o.RequestTryOn(ctx, userID, active, nil, &color)
}

// SetActiveAngle switches which angle the client is viewing without
// triggering a render.
func (o *Orchestrator) SetActiveAngle(userID string, angle models.CameraAngle) FittingState {
	o.mu.Lock()
	defer o.mu.Unlock()
	f := o.fitting(userID)
	f.active = angle
	return f.snapshot()
}

// RequestTryOn renders one angle. item overrides the current selection and
// color overrides the chosen swatch; both default to the fitting state.
// The call blocks until the render resolves. A resolution whose garment
// selection changed underneath it, or that was superseded by a newer
// request for the same angle, is discarded instead of written to the cache.
func (o *Orchestrator) RequestTryOn(ctx context.Context, userID string, angle models.CameraAngle, item *models.ClothingItem, color *models.ColorSwatch) (FittingState, error) {
	portrait, err := o.recorder.Portrait(ctx, userID)
	if err != nil {
		return FittingState{}, err
	}
	if portrait == "" {
		return o.State(userID), models.ErrNoPortrait
	}

	o.mu.Lock()
	f := o.fitting(userID)
	if item != nil {
		f.epoch++
		f.selection = []models.ClothingItem{*item}
		f.results = make(map[models.CameraAngle]AngleResult)
		f.seq = make(map[models.CameraAngle]uint64)
		f.applied = make(map[models.CameraAngle]uint64)
	}
	if len(f.selection) == 0 {
		o.mu.Unlock()
		return o.State(userID), models.ErrNoGarment
	}
	if color == nil {
		color = f.color
	}
	garments := make([]string, len(f.selection))
	for i, g := range f.selection {
		garments[i] = g.Name
	}
	selection := append([]models.ClothingItem(nil), f.selection...)
	f.active = angle
	f.lastErr = ""
	f.inflight[angle]++
	f.seq[angle]++
	epoch, seq := f.epoch, f.seq[angle]
	o.mu.Unlock()

	analysis, err := o.recorder.Analysis(ctx, userID)
	if err != nil {
		o.finish(userID, angle)
		return o.State(userID), err
	}
	colorPrompt := ""
	if color != nil {
		colorPrompt = color.Prompt
	}

	image, synthErr := o.synth.GenerateTryOn(ctx, portrait, garments, angle, analysis, colorPrompt)
	var key string
	if synthErr == nil {
		key, synthErr = o.images.SaveResult(ctx, userID, image)
	}

	o.mu.Lock()
	f = o.fitting(userID)
	f.inflight[angle]--
	if f.inflight[angle] <= 0 {
		delete(f.inflight, angle)
	}
	if f.epoch != epoch {
		// The garment changed while this render was in flight.
		st := f.snapshot()
		o.mu.Unlock()
		return st, nil
	}
	if synthErr != nil {
		f.lastErr = synthErr.Error()
		st := f.snapshot()
		o.mu.Unlock()
		return st, fmt.Errorf("%w: %v", models.ErrTryOnFailed, synthErr)
	}
	if seq <= f.applied[angle] {
		// A newer render for this angle already landed.
		st := f.snapshot()
		o.mu.Unlock()
		return st, nil
	}
	f.applied[angle] = seq
	f.results[angle] = AngleResult{Image: key, Color: color}
	st := f.snapshot()
	o.mu.Unlock()

	// Front is the canonical completed-session signal.
	if angle == models.AngleFront && analysis != nil {
		entry := models.TryOnSession{
			ClothingItems: selection,
			ResultImage:   key,
			Analysis:      *analysis,
		}
		if err := o.recorder.AppendHistory(ctx, userID, entry); err != nil {
			return st, err
		}
	}
	return st, nil
}

func (o *Orchestrator) finish(userID string, angle models.CameraAngle) {
	o.mu.Lock()
	defer o.mu.Unlock()
	f := o.fitting(userID)
	f.inflight[angle]--
	if f.inflight[angle] <= 0 {
		delete(f.inflight, angle)
	}
}

// SaveToCloset snapshots the active angle's cached render into the closet.
// The garment and analysis are copied at save time, so later catalog or
// analysis changes cannot alter the saved look.
func (o *Orchestrator) SaveToCloset(ctx context.Context, userID, notes string, tags []string) (models.SavedLook, error) {
	o.mu.Lock()
	f := o.fitting(userID)
	if len(f.selection) == 0 {
		o.mu.Unlock()
		return models.SavedLook{}, models.ErrNoGarment
	}
	result, ok := f.results[f.active]
	if !ok {
		o.mu.Unlock()
		return models.SavedLook{}, models.ErrLookNotFound
	}
	look := models.SavedLook{
		ClothingItem:  f.selection[0],
		ResultImage:   result.Image,
		Angle:         f.active,
		SelectedColor: result.Color,
		Notes:         notes,
		Tags:          tags,
	}
	o.mu.Unlock()

	analysis, err := o.recorder.Analysis(ctx, userID)
	if err != nil {
		return models.SavedLook{}, err
	}
	look.Analysis = analysis
	return o.recorder.SaveLook(ctx, userID, look)
}
