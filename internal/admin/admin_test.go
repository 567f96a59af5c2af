package admin

import (
	"fmt"
	"testing"
	"time"

	"github.com/manav03panchal/countdown/internal/clock"
	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow   = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	testCreds = Credentials{User: "admin", Password: "s3cret"}
)

func setupController(t *testing.T) (*Controller, *storage.TimerRepo, *clock.Manual) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clk := clock.NewManual(testNow)
	repo := storage.NewTimerRepo(db, clk)
	require.NoError(t, repo.Save(map[string]*model.Timer{}))

	return NewController(repo, NewSession(testCreds), clk, time.UTC), repo, clk
}

func loggedIn(t *testing.T) (*Controller, *storage.TimerRepo, *clock.Manual) {
	c, repo, clk := setupController(t)
	require.NoError(t, c.LoginAttempted("admin", "s3cret"))
	return c, repo, clk
}

func always(answer bool) Confirmer {
	return ConfirmFunc(func(string) (bool, error) { return answer, nil })
}

// =============================================================================
// Session Tests
// =============================================================================

func TestSessionLogin(t *testing.T) {
	s := NewSession(testCreds)
	assert.False(t, s.IsAuthenticated())
	assert.NotEmpty(t, s.ID())

	tests := []struct {
		name     string
		user     string
		password string
	}{
		{"wrong_password", "admin", "nope"},
		{"wrong_user", "root", "s3cret"},
		{"case_differs", "Admin", "s3cret"},
		{"padded", "admin ", "s3cret"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Login(tt.user, tt.password)
			require.Error(t, err)
			assert.True(t, errors.IsAuthError(err))
			assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
			assert.False(t, s.IsAuthenticated())
		})
	}

	require.NoError(t, s.Login("admin", "s3cret"))
	assert.True(t, s.IsAuthenticated())

	s.Logout()
	assert.False(t, s.IsAuthenticated())
}

func TestSessionFailedLoginLogsOut(t *testing.T) {
	s := NewSession(testCreds)
	require.NoError(t, s.Login("admin", "s3cret"))
	assert.Error(t, s.Login("admin", "bad"))
	assert.False(t, s.IsAuthenticated())
}

func TestSessionIDsDiffer(t *testing.T) {
	assert.NotEqual(t, NewSession(testCreds).ID(), NewSession(testCreds).ID())
}

// =============================================================================
// Auth Gate Tests
// =============================================================================

func TestIntentsRequireLogin(t *testing.T) {
	c, repo, _ := setupController(t)
	existing, err := repo.Upsert(model.NewTimer("Existing", model.TimerTypeCountdown, testNow.Add(time.Hour)))
	require.NoError(t, err)

	_, err = c.SaveRequested(Form{Title: "X", Date: "2030-01-01T00:00"})
	assert.ErrorIs(t, err, errors.ErrNotAuthenticated)

	_, err = c.EditRequested(existing.ID)
	assert.ErrorIs(t, err, errors.ErrNotAuthenticated)

	_, err = c.DeleteRequested(existing.ID, always(true))
	assert.ErrorIs(t, err, errors.ErrNotAuthenticated)
	assert.True(t, errors.IsAuthError(err))

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// =============================================================================
// Save Tests
// =============================================================================

func TestSaveRequestedCreates(t *testing.T) {
	c, repo, _ := loggedIn(t)

	saved, err := c.SaveRequested(Form{Title: "  Отпуск ", Type: "countdown", Date: "2025-07-01T10:00"})
	require.NoError(t, err)
	assert.Equal(t, "Отпуск", saved.Title)
	assert.Equal(t, model.TimerTypeCountdown, saved.Type)
	assert.True(t, time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC).Equal(saved.Date))
	assert.True(t, testNow.Equal(saved.CreationDate))

	stored, err := repo.Get(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Title, stored.Title)
}

func TestSaveRequestedDefaultsToCountdown(t *testing.T) {
	c, _, _ := loggedIn(t)
	saved, err := c.SaveRequested(Form{Title: "T", Date: "+1d"})
	require.NoError(t, err)
	assert.Equal(t, model.TimerTypeCountdown, saved.Type)
	assert.True(t, testNow.AddDate(0, 0, 1).Equal(saved.Date))
}

func TestSaveRequestedEditKeepsTypeAndCreation(t *testing.T) {
	c, _, clk := loggedIn(t)
	created, err := c.SaveRequested(Form{Title: "Старт", Type: "elapsed", Date: "2025-05-01T00:00"})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	form, err := c.EditRequested(created.ID)
	require.NoError(t, err)
	form.Title = "Старт v2"
	form.Type = "countdown"
	form.Date = "2025-05-02T00:00"

	updated, err := c.SaveRequested(form)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Старт v2", updated.Title)
	assert.Equal(t, model.TimerTypeElapsed, updated.Type)
	assert.True(t, created.CreationDate.Equal(updated.CreationDate))
	assert.True(t, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC).Equal(updated.Date))
}

func TestSaveRequestedTitleOnlyEditKeepsDate(t *testing.T) {
	c, repo, _ := loggedIn(t)
	created, err := c.SaveRequested(Form{Title: "Скоро", Date: "+90s"})
	require.NoError(t, err)
	require.NotZero(t, created.Date.Second())

	form, err := c.EditRequested(created.ID)
	require.NoError(t, err)
	form.Title = "Совсем скоро"

	updated, err := c.SaveRequested(form)
	require.NoError(t, err)
	assert.True(t, created.Date.Equal(updated.Date), "before=%s after=%s", created.Date, updated.Date)

	updated, err = c.SaveRequested(Form{ID: created.ID, Title: "Ещё", Date: ""})
	require.NoError(t, err)
	assert.True(t, created.Date.Equal(updated.Date))

	stored, err := repo.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, created.Date.Equal(stored.Date))
	assert.Equal(t, "Ещё", stored.Title)
}

func TestSaveRequestedValidation(t *testing.T) {
	tests := []struct {
		name   string
		form   Form
		target error
	}{
		{"empty_title", Form{Title: "", Date: "2030-01-01"}, errors.ErrTitleRequired},
		{"blank_title", Form{Title: " \t", Date: "2030-01-01"}, errors.ErrTitleRequired},
		{"empty_date", Form{Title: "T", Date: ""}, errors.ErrDateRequired},
		{"bad_date", Form{Title: "T", Date: "qwxz blorp"}, errors.ErrInvalidDate},
		{"bad_type", Form{Title: "T", Type: "weekly", Date: "2030-01-01"}, errors.ErrInvalidTimerType},
		{"bad_id", Form{ID: "a b", Title: "T", Date: "2030-01-01"}, errors.ErrInvalidTimerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, repo, _ := loggedIn(t)
			_, err := c.SaveRequested(tt.form)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, errors.CategoryUser, errors.Classify(err))

			list, err := repo.List()
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

// =============================================================================
// Edit Tests
// =============================================================================

func TestEditRequested(t *testing.T) {
	c, repo, _ := loggedIn(t)
	saved, err := repo.Upsert(&model.Timer{
		Title: "Новый Год",
		Type:  model.TimerTypeCountdown,
		Date:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	form, err := c.EditRequested(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, Form{ID: saved.ID, Title: "Новый Год", Type: "countdown", Date: "2026-01-01T00:00"}, form)
	assert.True(t, form.IsEdit())

	t.Run("local_zone", func(t *testing.T) {
		msk := NewController(repo, c.Session(), clock.NewManual(testNow), time.FixedZone("MSK", 3*60*60))
		form, err := msk.EditRequested(saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "2026-01-01T03:00", form.Date)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := c.EditRequested("missing")
		assert.ErrorIs(t, err, errors.ErrTimerNotFound)
	})
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestDeleteRequested(t *testing.T) {
	c, repo, _ := loggedIn(t)
	saved, err := repo.Upsert(model.NewTimer("Удаляемый", model.TimerTypeElapsed, testNow))
	require.NoError(t, err)

	t.Run("declined", func(t *testing.T) {
		var prompt string
		deleted, err := c.DeleteRequested(saved.ID, ConfirmFunc(func(p string) (bool, error) {
			prompt = p
			return false, nil
		}))
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Contains(t, prompt, "Удаляемый")

		_, err = repo.Get(saved.ID)
		assert.NoError(t, err)
	})

	t.Run("confirm_error", func(t *testing.T) {
		boom := fmt.Errorf("stdin closed")
		deleted, err := c.DeleteRequested(saved.ID, ConfirmFunc(func(string) (bool, error) { return false, boom }))
		assert.ErrorIs(t, err, boom)
		assert.False(t, deleted)
	})

	t.Run("confirmed", func(t *testing.T) {
		deleted, err := c.DeleteRequested(saved.ID, always(true))
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.Get(saved.ID)
		assert.ErrorIs(t, err, errors.ErrTimerNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := c.DeleteRequested(saved.ID, always(true))
		assert.ErrorIs(t, err, errors.ErrTimerNotFound)
	})
}

func TestDeleteRequestedNilConfirmer(t *testing.T) {
	c, repo, _ := loggedIn(t)
	saved, err := repo.Upsert(model.NewTimer("X", model.TimerTypeElapsed, testNow))
	require.NoError(t, err)

	deleted, err := c.DeleteRequested(saved.ID, nil)
	require.NoError(t, err)
	assert.True(t, deleted)
}
