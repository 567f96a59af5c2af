package storage

import (
	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/model"
)

// ThemeRepo stores the color scheme preference as a bare string under
// model.KeyTheme.
type ThemeRepo struct {
	db *DB
}

// NewThemeRepo creates a new theme repository.
func NewThemeRepo(db *DB) *ThemeRepo {
	return &ThemeRepo{db: db}
}

// Get returns the stored theme, or model.DefaultTheme if none is stored.
func (r *ThemeRepo) Get() (model.Theme, error) {
	data, err := r.db.GetBytes(model.KeyTheme)
	if IsErrKeyNotFound(err) {
		return model.DefaultTheme, nil
	}
	if err != nil {
		return "", errors.NewSystemErrorWithOp("load theme", "failed to read theme", err)
	}

	theme, err := model.ParseTheme(string(data))
	if err != nil {
		logging.Warn("ignoring unknown stored theme", logging.KeyTheme, string(data))
		return model.DefaultTheme, nil
	}
	return theme, nil
}

// Set stores the theme.
func (r *ThemeRepo) Set(theme model.Theme) error {
	if theme != model.ThemeDark && theme != model.ThemeLight {
		return errors.NewValidationError("theme", string(theme), errors.ErrInvalidTheme)
	}
	if err := r.db.SetBytes(model.KeyTheme, []byte(theme)); err != nil {
		return errors.NewSystemErrorWithOp("save theme", "failed to write theme", err)
	}
	return nil
}

// Toggle flips the stored theme and returns the new value.
func (r *ThemeRepo) Toggle() (model.Theme, error) {
	current, err := r.Get()
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := r.Set(next); err != nil {
		return "", err
	}
	return next, nil
}
