package session

import (
	"sync"
	"time"

	"github.com/rytavi/howmuch/history"
	"github.com/rytavi/howmuch/internal/clock"
	"github.com/rytavi/howmuch/internal/earnings"
)

// Settings are the inputs a controller starts with.
type Settings struct {
	Rate         earnings.Rate
	Schedule     earnings.Schedule
	Goal         float64
	UnpaidBreaks bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock used for every elapsed time reading.
func WithClock(c clock.Clock) Option {
	return func(ctrl *Controller) {
		ctrl.clock = c
	}
}

// WithHistory sets the history that finished sessions are added to.
func WithHistory(h *history.History) Option {
	return func(ctrl *Controller) {
		ctrl.history = h
	}
}

// Controller owns the timer state. Every change goes through one of its
// intent methods, which return the resulting State and notify subscribers.
type Controller struct {
	clock       clock.Clock
	history     *history.History
	subscribers map[int]func(State)
	state       State
	nextSubID   int
	mu          sync.Mutex
}

// New creates an idle controller.
func New(settings Settings, opts ...Option) *Controller {
	ctrl := &Controller{
		clock:       clock.Real{},
		history:     history.New(nil),
		subscribers: make(map[int]func(State)),
		state: State{
			Rate:         settings.Rate,
			Schedule:     settings.Schedule,
			Goal:         settings.Goal,
			UnpaidBreaks: settings.UnpaidBreaks,
		},
	}

	if ctrl.state.Rate.Mode == "" {
		ctrl.state.Rate.Mode = earnings.Annual
	}

	if ctrl.state.Schedule == (earnings.Schedule{}) {
		ctrl.state.Schedule = earnings.DefaultSchedule()
	}

	for _, opt := range opts {
		opt(ctrl)
	}

	return ctrl
}

// Subscribe registers fn to receive every committed state. The returned
// function removes the subscription.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// History returns the history finished sessions are recorded in.
func (c *Controller) History() *history.History {
	return c.history
}

// Now returns the controller's current time.
func (c *Controller) Now() time.Time {
	return c.clock.Now()
}

// Start begins counting or resumes a paused session. The rate and
// schedule must be valid.
func (c *Controller) Start() (State, error) {
	c.mu.Lock()

	if c.state.Status == Running {
		return c.abort(nil)
	}

	if !c.state.Rate.Valid() {
		return c.abort(ErrInvalidRate)
	}

	if err := c.state.Schedule.Validate(); err != nil {
		return c.abort(err)
	}

	c.state.StartTime = c.clock.Now()
	c.state.Status = Running

	return c.commit(), nil
}

// Pause folds the current running slice into the accumulated time. A
// break in progress is ended first.
func (c *Controller) Pause() (State, error) {
	c.mu.Lock()

	if c.state.Status != Running {
		return c.abort(ErrNotRunning)
	}

	c.settle(c.clock.Now())
	c.state.Status = Paused

	return c.commit(), nil
}

// ToggleBreak starts or ends a break. Breaks are only possible while the
// timer is running.
func (c *Controller) ToggleBreak() (State, error) {
	c.mu.Lock()

	if c.state.Status != Running {
		return c.abort(ErrNotRunning)
	}

	now := c.clock.Now()

	if c.state.OnBreak {
		c.endBreak(now)
	} else {
		c.state.OnBreak = true
		c.state.BreakStart = now
	}

	return c.commit(), nil
}

// Tick recomputes the earnings of a running session and reports the
// milestone reached since the previous tick, if any.
func (c *Controller) Tick() (State, *Celebration) {
	c.mu.Lock()

	if c.state.Status != Running {
		s := c.state
		c.mu.Unlock()

		return s, nil
	}

	c.updateEarnings(c.clock.Now())

	var celebration *Celebration

	cel, ok := checkMilestone(c.state.Earnings, c.state.Goal, c.state.Celebrated)
	if ok {
		c.state.Celebrated = cel.Amount
		celebration = &cel
	}

	return c.commit(), celebration
}

// Reset ends the session. A session with any elapsed time or earnings is
// added to the history and returned; otherwise the record is nil.
func (c *Controller) Reset() (State, *history.Record) {
	c.mu.Lock()

	now := c.clock.Now()

	if c.state.Status == Running {
		c.settle(now)
	}

	var rec *history.Record

	if c.state.Dirty(now) {
		r := history.NewRecord(
			now,
			c.state.Earnings,
			c.state.Elapsed,
			c.state.BreakElapsed,
			c.state.Rate,
		)

		c.history.Add(r)

		rec = &r
	}

	c.state = State{
		Rate:         c.state.Rate,
		Schedule:     c.state.Schedule,
		Goal:         c.state.Goal,
		UnpaidBreaks: c.state.UnpaidBreaks,
		Status:       Idle,
	}

	return c.commit(), rec
}

// SetRate changes the pay rate. It is refused while the timer runs.
func (c *Controller) SetRate(r earnings.Rate) (State, error) {
	c.mu.Lock()

	if c.state.Status == Running {
		return c.abort(ErrRunning)
	}

	if !r.Valid() {
		return c.abort(ErrInvalidRate)
	}

	if r.Mode != earnings.Annual && r.Mode != earnings.Hourly {
		return c.abort(earnings.ErrInvalidMode.Fmt(r.Mode))
	}

	c.state.Rate = r
	c.rebase()

	return c.commit(), nil
}

// SetSchedule changes the work schedule. It is refused while the timer
// runs.
func (c *Controller) SetSchedule(s earnings.Schedule) (State, error) {
	c.mu.Lock()

	if c.state.Status == Running {
		return c.abort(ErrRunning)
	}

	if err := s.Validate(); err != nil {
		return c.abort(err)
	}

	c.state.Schedule = s
	c.rebase()

	return c.commit(), nil
}

// SetGoal changes the goal. Zero removes it.
func (c *Controller) SetGoal(goal float64) (State, error) {
	c.mu.Lock()

	if goal < 0 || goal > earnings.MaxRate {
		return c.abort(ErrInvalidGoal)
	}

	c.state.Goal = goal

	return c.commit(), nil
}

// SetUnpaidBreaks decides whether break time earns money. It is refused
// while the timer runs.
func (c *Controller) SetUnpaidBreaks(unpaid bool) (State, error) {
	c.mu.Lock()

	if c.state.Status == Running {
		return c.abort(ErrRunning)
	}

	c.state.UnpaidBreaks = unpaid
	c.rebase()

	return c.commit(), nil
}

// ClearHistory removes every recorded session.
func (c *Controller) ClearHistory() State {
	c.mu.Lock()

	c.history.Clear()

	return c.commit()
}

// settle closes the running slice and any break at now.
func (c *Controller) settle(now time.Time) {
	c.updateEarnings(now)

	if c.state.OnBreak {
		c.endBreak(now)
	}

	if slice := now.Sub(c.state.StartTime); slice > 0 {
		c.state.Elapsed += slice
	}

	c.state.StartTime = time.Time{}
}

func (c *Controller) endBreak(now time.Time) {
	if slice := now.Sub(c.state.BreakStart); slice > 0 {
		c.state.BreakElapsed += slice
	}

	c.state.OnBreak = false
	c.state.BreakStart = time.Time{}
}

// updateEarnings sets the earnings for the time elapsed up to now. The
// value never goes down while the rate is unchanged, even if the clock
// does.
func (c *Controller) updateEarnings(now time.Time) {
	paid := c.state.TotalElapsed(now)
	if c.state.UnpaidBreaks {
		paid = c.state.WorkTime(now)
	}

	amount := paid.Minutes() * c.state.PerMinute()

	if amount > c.state.Earnings {
		c.state.Earnings = amount
	}
}

// rebase recomputes the earnings of a paused session after one of its
// inputs changed, so they may go down.
func (c *Controller) rebase() {
	if c.state.Status != Paused {
		return
	}

	paid := c.state.Elapsed
	if c.state.UnpaidBreaks {
		paid -= c.state.BreakElapsed
	}

	c.state.Earnings = paid.Minutes() * c.state.PerMinute()
}

// abort unlocks the controller without notifying anyone.
func (c *Controller) abort(err error) (State, error) {
	s := c.state
	c.mu.Unlock()

	return s, err
}

// commit unlocks the controller and hands the new state to subscribers.
// It must be called with the lock held.
func (c *Controller) commit() State {
	s := c.state

	subs := make([]func(State), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}

	c.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}

	return s
}
