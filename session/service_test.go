package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/store"
)

type stubAnalyzer struct {
	analysis models.BodyAnalysis
	err      error
	calls    int
}

func (a *stubAnalyzer) AnalyzePortrait(ctx context.Context, photo string) (models.BodyAnalysis, error) {
	a.calls++
	return a.analysis, a.err
}

type stubMailer struct {
	sent []string
	err  error
}

func (m *stubMailer) SendEmail(toName, toEmail, subject, text, html string) error {
	m.sent = append(m.sent, toEmail)
	return m.err
}

func newTestService(analyzer Analyzer, mailer Mailer) (*Service, *store.Memory) {
	mem := store.NewMemory()
	mint := func(userID string) (string, error) { return "token-" + userID, nil }
	return NewService(mem, analyzer, mailer, mint), mem
}

func signedUpAndIn(t *testing.T, svc *Service) models.User {
	t.Helper()
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "Asha", "asha@example.com", "secret", "secret")
	require.NoError(t, err)
	u, _, err := svc.SignIn(ctx, "asha@example.com", "secret")
	require.NoError(t, err)
	return u
}

func TestSignUpPasswordMismatch(t *testing.T) {
	svc, _ := newTestService(&stubAnalyzer{}, nil)
	_, err := svc.SignUp(context.Background(), "Asha", "asha@example.com", "secret", "other")
	assert.ErrorIs(t, err, models.ErrPasswordMismatch)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(&stubAnalyzer{}, nil)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "Asha", "asha@example.com", "secret", "secret")
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, "Other", "Asha@Example.com", "secret", "secret")
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestSignUpSendsWelcomeEmail(t *testing.T) {
	mailer := &stubMailer{}
	svc, _ := newTestService(&stubAnalyzer{}, mailer)
	_, err := svc.SignUp(context.Background(), "Asha", "asha@example.com", "secret", "secret")
	require.NoError(t, err)
	assert.Equal(t, []string{"asha@example.com"}, mailer.sent)
}

func TestSignUpSucceedsWhenMailerFails(t *testing.T) {
	mailer := &stubMailer{err: errors.New("smtp down")}
	svc, _ := newTestService(&stubAnalyzer{}, mailer)
	_, err := svc.SignUp(context.Background(), "Asha", "asha@example.com", "secret", "secret")
	assert.NoError(t, err)
}

func TestSignInWrongSecret(t *testing.T) {
	svc, _ := newTestService(&stubAnalyzer{}, nil)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "Asha", "asha@example.com", "secret", "secret")
	require.NoError(t, err)

	_, _, err = svc.SignIn(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, _, err = svc.SignIn(ctx, "nobody@example.com", "secret")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestSignInOpensSession(t *testing.T) {
	svc, _ := newTestService(&stubAnalyzer{}, nil)
	ctx := context.Background()
	u := signedUpAndIn(t, svc)

	current, err := svc.CurrentUser(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "asha@example.com", current.Email)
	assert.False(t, current.PhotoUploaded)
}

func TestSignOutWipesAllState(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: models.BodyAnalysis{Gender: "Female", SkinTone: "Dusky", BodyShape: models.ShapePear}}
	svc, _ := newTestService(analyzer, nil)
	ctx := context.Background()
	u := signedUpAndIn(t, svc)

	_, _, err := svc.CompleteUpload(ctx, u.ID, "portraits/asha.png")
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, u.ID, models.ClothingItem{ID: "fs-1"}, nil)
	require.NoError(t, err)
	_, err = svc.SaveLook(ctx, u.ID, models.SavedLook{ResultImage: "results/a.png"})
	require.NoError(t, err)
	require.NoError(t, svc.AppendHistory(ctx, u.ID, models.TryOnSession{ResultImage: "results/a.png"}))

	require.NoError(t, svc.SignOut(ctx, u.ID))

	current, err := svc.CurrentUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, current)
	analysis, err := svc.Analysis(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, analysis)
	cart, err := svc.Cart(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)
	looks, err := svc.Looks(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, looks)
	history, err := svc.History(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	// Account survives the wipe; signing back in works.
	_, _, err = svc.SignIn(ctx, "asha@example.com", "secret")
	assert.NoError(t, err)
}

func TestCompleteUploadWithoutSession(t *testing.T) {
	svc, _ := newTestService(&stubAnalyzer{}, nil)
	_, _, err := svc.CompleteUpload(context.Background(), "ghost", "portraits/x.png")
	assert.ErrorIs(t, err, models.ErrNoSession)
}

func TestCompleteUploadStoresAnalysis(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: models.BodyAnalysis{Gender: "Female", SkinTone: "Fair", BodyShape: models.ShapeHourglass}}
	svc, _ := newTestService(analyzer, nil)
	ctx := context.Background()
	u := signedUpAndIn(t, svc)

	updated, analysis, err := svc.CompleteUpload(ctx, u.ID, "portraits/asha.png")
	require.NoError(t, err)
	assert.True(t, updated.PhotoUploaded)
	assert.Equal(t, "portraits/asha.png", updated.PhotoURL)
	require.NotNil(t, analysis)
	assert.Equal(t, models.ShapeHourglass, analysis.BodyShape)

	stored, err := svc.Analysis(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Fair", stored.SkinTone)
}

func TestCompleteUploadAnalysisFailureKeepsPortrait(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("model overloaded")}
	svc, _ := newTestService(analyzer, nil)
	ctx := context.Background()
	u := signedUpAndIn(t, svc)

	updated, analysis, err := svc.CompleteUpload(ctx, u.ID, "portraits/asha.png")
	assert.ErrorIs(t, err, models.ErrAnalysisFailed)
	assert.Nil(t, analysis)
	assert.True(t, updated.PhotoUploaded)

	// The portrait mutation persisted despite the failed analysis.
	current, err := svc.CurrentUser(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, current.PhotoUploaded)
	stored, err := svc.Analysis(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCartLinesAreDistinct(t *testing.T) {
	svc, _ := newTestService(&stubAnalyzer{}, nil)
	ctx := context.Background()
	u := signedUpAndIn(t, svc)

	item := models.ClothingItem{ID: "fs-1", Name: "Silk Anarkali"}
	first, err := svc.AddToCart(ctx, u.ID, item, nil)
	require.NoError(t, err)
	second, err := svc.AddToCart(ctx, u.ID, item, &models.ColorSwatch{Name: "Emerald Green"})
	require.NoError(t, err)
	assert.NotEqual(t, first.CartID, second.CartID)

	cart, err := svc.Cart(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, cart, 2)

	require.NoError(t, svc.RemoveFromCart(ctx, u.ID, first.CartID))
	cart, err = svc.Cart(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, second.CartID, cart[0].CartID)

	require.NoError(t, svc.ClearCart(ctx, u.ID))
	cart, err = svc.Cart(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestClosetNewestFirst(t *testing.T) {
	svc, _ := newTestService(&stubAnalyzer{}, nil)
	ctx := context.Background()
	u := signedUpAndIn(t, svc)

	_, err := svc.SaveLook(ctx, u.ID, models.SavedLook{ResultImage: "results/one.png"})
	require.NoError(t, err)
	_, err = svc.SaveLook(ctx, u.ID, models.SavedLook{ResultImage: "results/two.png"})
	require.NoError(t, err)

	looks, err := svc.Looks(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, looks, 2)
	assert.Equal(t, "results/two.png", looks[0].ResultImage)
	assert.Equal(t, "results/one.png", looks[1].ResultImage)
}

func TestUpdateAndDeleteLook(t *testing.T) {
	svc, _ := newTestService(&stubAnalyzer{}, nil)
	ctx := context.Background()
	u := signedUpAndIn(t, svc)

	saved, err := svc.SaveLook(ctx, u.ID, models.SavedLook{ResultImage: "results/one.png"})
	require.NoError(t, err)

	updated, err := svc.UpdateLook(ctx, u.ID, saved.ID, "wedding option", []string{"festive"})
	require.NoError(t, err)
	assert.Equal(t, "wedding option", updated.Notes)
	assert.Equal(t, []string{"festive"}, updated.Tags)

	_, err = svc.UpdateLook(ctx, u.ID, "missing", "", nil)
	assert.ErrorIs(t, err, models.ErrLookNotFound)

	require.NoError(t, svc.DeleteLook(ctx, u.ID, saved.ID))
	assert.ErrorIs(t, svc.DeleteLook(ctx, u.ID, saved.ID), models.ErrLookNotFound)
}

func TestHistoryNewestFirstAndClear(t *testing.T) {
	svc, _ := newTestService(&stubAnalyzer{}, nil)
	ctx := context.Background()
	u := signedUpAndIn(t, svc)

	require.NoError(t, svc.AppendHistory(ctx, u.ID, models.TryOnSession{ResultImage: "results/one.png"}))
	require.NoError(t, svc.AppendHistory(ctx, u.ID, models.TryOnSession{ResultImage: "results/two.png"}))

	history, err := svc.History(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "results/two.png", history[0].ResultImage)

	require.NoError(t, svc.ClearHistory(ctx, u.ID))
	history, err = svc.History(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}
