package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/manav03panchal/countdown/internal/clock"
	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/parser"
	"github.com/manav03panchal/countdown/internal/validate"
)

// Store is the part of the timer store the controller writes to.
type Store interface {
	Get(id string) (*model.Timer, error)
	Upsert(t *model.Timer) (*model.Timer, error)
	Remove(id string) error
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// Form is the create/edit form. Date holds user input; on edit it is
// prefilled in InputLayout.
type Form struct {
	ID    string
	Title string
	Type  string
	Date  string
}

// IsEdit reports whether the form targets an existing timer.
func (f Form) IsEdit() bool {
	return f.ID != ""
}

// Controller validates admin intents and forwards them to the store.
type Controller struct {
	store   Store
	session *Session
	clock   clock.Clock
	loc     *time.Location
}

// NewController creates a controller. Dates without a zone are read in loc;
// nil means time.Local.
func NewController(store Store, session *Session, clk clock.Clock, loc *time.Location) *Controller {
	if clk == nil {
		clk = clock.Real{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Controller{store: store, session: session, clock: clk, loc: loc}
}

// Session returns the controller's session.
func (c *Controller) Session() *Session {
	return c.session
}

// LoginAttempted logs the session in.
func (c *Controller) LoginAttempted(user, password string) error {
	return c.session.Login(user, password)
}

// SaveRequested creates a timer, or updates one when the form carries an ID.
// The type of an existing timer is kept whatever the form says. On edit an
// empty date, or the unchanged prefilled date, keeps the stored instant.
func (c *Controller) SaveRequested(f Form) (*model.Timer, error) {
	if err := c.session.require(); err != nil {
		return nil, err
	}

	title := validate.SanitizeTitle(f.Title)
	if err := validate.Title(title); err != nil {
		return nil, err
	}
	if err := validate.TimerID(f.ID); err != nil {
		return nil, err
	}

	existing, err := c.existing(f)
	if err != nil {
		return nil, err
	}

	date, err := c.resolveDate(f, existing)
	if err != nil {
		return nil, err
	}

	timerType, err := resolveType(f, existing)
	if err != nil {
		return nil, err
	}

	saved, err := c.store.Upsert(&model.Timer{
		ID:    f.ID,
		Title: title,
		Type:  timerType,
		Date:  date,
	})
	if err != nil {
		return nil, err
	}

	logging.ForTimer(saved.ID).Info("timer saved",
		logging.KeySession, c.session.ID(),
		logging.KeyType, saved.Type)
	return saved, nil
}

// existing returns the stored timer an edit form refers to, or nil.
func (c *Controller) existing(f Form) (*model.Timer, error) {
	if !f.IsEdit() {
		return nil, nil
	}
	t, err := c.store.Get(f.ID)
	if err != nil {
		if errors.Is(err, errors.ErrTimerNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (c *Controller) resolveDate(f Form, existing *model.Timer) (time.Time, error) {
	if existing != nil {
		input := strings.TrimSpace(f.Date)
		if input == "" || input == parser.FormatInput(existing.Date, c.loc) {
			return existing.Date, nil
		}
	}
	return parser.ParseTargetDate(f.Date, c.clock.Now().In(c.loc))
}

func resolveType(f Form, existing *model.Timer) (model.TimerType, error) {
	if existing != nil {
		return existing.Type, nil
	}

	if f.Type == "" {
		return model.TimerTypeCountdown, nil
	}
	t, err := model.ParseTimerType(f.Type)
	if err != nil {
		return "", errors.NewValidationError("type", f.Type, errors.ErrInvalidTimerType)
	}
	return t, nil
}

// EditRequested returns a form prefilled from the stored timer.
func (c *Controller) EditRequested(id string) (Form, error) {
	if err := c.session.require(); err != nil {
		return Form{}, err
	}

	t, err := c.store.Get(id)
	if err != nil {
		return Form{}, err
	}

	return Form{
		ID:    t.ID,
		Title: t.Title,
		Type:  string(t.Type),
		Date:  parser.FormatInput(t.Date, c.loc),
	}, nil
}

// DeleteRequested removes a timer once confirm agrees. It reports whether
// the timer was removed; a declined confirmation is not an error.
func (c *Controller) DeleteRequested(id string, confirm Confirmer) (bool, error) {
	if err := c.session.require(); err != nil {
		return false, err
	}

	t, err := c.store.Get(id)
	if err != nil {
		return false, err
	}

	if confirm != nil {
		ok, err := confirm.Confirm(fmt.Sprintf("Удалить таймер «%s»?", t.Title))
		if err != nil {
			return false, err
		}
		if !ok {
			logging.ForTimer(id).Debug("delete declined")
			return false, nil
		}
	}

	if err := c.store.Remove(id); err != nil {
		return false, err
	}

	logging.ForTimer(id).Info("timer deleted", logging.KeySession, c.session.ID())
	return true, nil
}
