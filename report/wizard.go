// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/profilefeed/models"
	"github.com/danielhkuo/profilefeed/options"
)

// ResetDelay is how long a closed dialog keeps its draft, so the closing
// animation does not flicker back to the first step.
const ResetDelay = 300 * time.Millisecond

// Notice texts shown to the reporter
const (
	MsgSelectPolicy   = "Please select at least one policy"
	MsgSelectFeedback = "Please select a feedback option"
	MsgSubmitted      = "Report submitted successfully"
	MsgSubmitFailed   = "Failed to submit report. Please try again."
)

var (
	ErrNoPolicies    = errors.New("no policy selected")
	ErrNoFeedback    = errors.New("no feedback selected")
	ErrSubmitting    = errors.New("report submission in progress")
	ErrWrongStep     = errors.New("action not available on this step")
	ErrUnknownOption = errors.New("unknown option")
	ErrNotOpen       = errors.New("report dialog is not open")
	ErrDisposed      = errors.New("report dialog disposed")
	ErrResultDropped = errors.New("report dialog closed before submission finished")
)

// Step is the screen the dialog is showing
type Step int

const (
	StepReport Step = iota
	StepFeedback
)

func (s Step) String() string {
	switch s {
	case StepReport:
		return "report"
	case StepFeedback:
		return "feedback"
	}
	return "unknown"
}

// Level is the severity of a notice
type Level int

const (
	LevelError Level = iota
	LevelSuccess
)

// Notifier shows toast-style notices to the reporter
type Notifier interface {
	Notify(level Level, message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(level Level, message string)

func (f NotifierFunc) Notify(level Level, message string) { f(level, message) }

// Submitter delivers a finished report. Client is the HTTP implementation.
type Submitter interface {
	Submit(ctx context.Context, req models.ReportRequest) error
}

// Scheduler runs f after d and returns a function that cancels it.
// The cancel function reports whether f was stopped before running.
type Scheduler func(d time.Duration, f func()) (cancel func() bool)

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Draft is what the reporter has selected so far.
// Policies keep the order they were picked in.
type Draft struct {
	Policies []string
	Feedback string
}

// Ready reports whether the draft may be submitted
func (d Draft) Ready() bool {
	return len(d.Policies) > 0 && d.Feedback != ""
}

// Request builds the payload sent for this draft
func (d Draft) Request(postID string) models.ReportRequest {
	return models.ReportRequest{
		ReportCategory: strings.Join(d.Policies, options.PolicySeparator),
		Reason:         d.Feedback,
		PostID:         postID,
	}
}

// State is a snapshot of the wizard
type State struct {
	Step       Step
	Draft      Draft
	Submitting bool
	Open       bool
}

type Option func(*Wizard)

// WithOptions restricts the selectable policies and feedback reasons
func WithOptions(set options.Set) Option {
	return func(w *Wizard) { w.choices = set }
}

// WithScheduler replaces time.AfterFunc for the deferred reset
func WithScheduler(s Scheduler) Option {
	return func(w *Wizard) { w.schedule = s }
}

// Wizard is the two-step report dialog for one post: pick policies, pick
// a feedback reason, submit.
//
// All methods are safe to call from any goroutine. Notices are delivered
// after the wizard's lock is released, so a Notifier may call back in.
type Wizard struct {
	postID    string
	submitter Submitter
	notifier  Notifier
	choices   options.Set
	schedule  Scheduler

	mu         sync.Mutex
	step       Step
	draft      Draft
	submitting bool
	open       bool
	disposed   bool

	// session changes whenever the dialog is closed or disposed; a
	// submission started in an older session has no visible effect
	session uint64

	cancelReset func() bool
	resetGen    uint64
}

func New(postID string, submitter Submitter, notifier Notifier, opts ...Option) *Wizard {
	w := &Wizard{
		postID:    postID,
		submitter: submitter,
		notifier:  notifier,
		choices:   options.Default(),
		schedule:  afterFunc,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// State returns a copy of the current state
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return State{
		Step: w.step,
		Draft: Draft{
			Policies: slices.Clone(w.draft.Policies),
			Feedback: w.draft.Feedback,
		},
		Submitting: w.submitting,
		Open:       w.open,
	}
}

// Open shows the dialog. A reset still pending from the previous close is
// applied right away, so every visible session starts empty.
func (w *Wizard) Open() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed {
		return ErrDisposed
	}
	if w.cancelReset != nil {
		w.cancelReset()
		w.cancelReset = nil
		w.resetLocked()
	}
	w.open = true
	return nil
}

// Close hides the dialog and schedules the draft reset after ResetDelay
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return
	}
	w.closeLocked()
}

// Dispose tears the wizard down. A pending reset is cancelled and the
// result of an in-flight submission is dropped when it arrives.
func (w *Wizard) Dispose() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancelReset != nil {
		w.cancelReset()
		w.cancelReset = nil
	}
	w.disposed = true
	w.open = false
	w.session++
}

// TogglePolicy adds the policy if absent and removes it if present
func (w *Wizard) TogglePolicy(policy string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editableLocked(StepReport); err != nil {
		return err
	}
	if !w.choices.HasPolicy(policy) {
		return ErrUnknownOption
	}

	if i := slices.Index(w.draft.Policies, policy); i >= 0 {
		w.draft.Policies = slices.Delete(w.draft.Policies, i, i+1)
	} else {
		w.draft.Policies = append(w.draft.Policies, policy)
	}
	return nil
}

// Continue moves from the policy step to the feedback step
func (w *Wizard) Continue() error {
	w.mu.Lock()
	if err := w.editableLocked(StepReport); err != nil {
		w.mu.Unlock()
		return err
	}
	if len(w.draft.Policies) == 0 {
		w.mu.Unlock()
		w.notify(LevelError, MsgSelectPolicy)
		return ErrNoPolicies
	}
	w.step = StepFeedback
	w.mu.Unlock()
	return nil
}

// Back returns to the policy step, keeping every selection
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editableLocked(StepFeedback); err != nil {
		return err
	}
	w.step = StepReport
	return nil
}

// SelectFeedback picks the single feedback reason
func (w *Wizard) SelectFeedback(feedback string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editableLocked(StepFeedback); err != nil {
		return err
	}
	if !w.choices.HasFeedback(feedback) {
		return ErrUnknownOption
	}
	w.draft.Feedback = feedback
	return nil
}

// Submit sends the report. It blocks until the submitter returns.
//
// On success the dialog closes. On failure the draft is kept on the
// feedback step so the reporter can try again.
//
// If the dialog was closed while the request was in flight the state is
// left alone: a success still gets its notice, a failure is dropped and
// its error returned. After Dispose every outcome is dropped and
// ErrResultDropped (or the submit error) is returned.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if err := w.editableLocked(StepFeedback); err != nil {
		w.mu.Unlock()
		return err
	}
	if !w.draft.Ready() {
		msg, err := MsgSelectFeedback, ErrNoFeedback
		if len(w.draft.Policies) == 0 {
			msg, err = MsgSelectPolicy, ErrNoPolicies
		}
		w.mu.Unlock()
		w.notify(LevelError, msg)
		return err
	}

	req := w.draft.Request(w.postID)
	session := w.session
	w.submitting = true
	w.mu.Unlock()

	err := w.submitter.Submit(ctx, req)

	w.mu.Lock()
	w.submitting = false
	if session != w.session {
		disposed := w.disposed
		w.mu.Unlock()
		if err == nil && !disposed {
			slog.Info("report submitted after dialog closed", "post_id", w.postID, "report_category", req.ReportCategory)
			w.notify(LevelSuccess, MsgSubmitted)
			return nil
		}
		slog.Info("report result dropped after dialog closed", "post_id", w.postID, "error", err)
		if err != nil {
			return err
		}
		return ErrResultDropped
	}

	if err != nil {
		w.mu.Unlock()
		slog.Error("error submitting report", "post_id", w.postID, "error", err)
		w.notify(LevelError, MsgSubmitFailed)
		return err
	}

	w.closeLocked()
	w.mu.Unlock()

	slog.Info("report submitted", "post_id", w.postID, "report_category", req.ReportCategory)
	w.notify(LevelSuccess, MsgSubmitted)
	return nil
}

// editableLocked checks the dialog accepts input on the given step
func (w *Wizard) editableLocked(step Step) error {
	if w.disposed {
		return ErrDisposed
	}
	if !w.open {
		return ErrNotOpen
	}
	if w.submitting {
		return ErrSubmitting
	}
	if w.step != step {
		return ErrWrongStep
	}
	return nil
}

func (w *Wizard) closeLocked() {
	w.open = false
	w.session++

	if w.cancelReset != nil {
		w.cancelReset()
	}
	w.resetGen++
	gen := w.resetGen
	w.cancelReset = w.schedule(ResetDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()

		// A newer close, an Open or Dispose superseded this reset
		if gen != w.resetGen || w.cancelReset == nil {
			return
		}
		w.cancelReset = nil
		w.resetLocked()
	})
}

func (w *Wizard) resetLocked() {
	w.step = StepReport
	w.draft = Draft{}
}

func (w *Wizard) notify(level Level, message string) {
	w.mu.Lock()
	disposed := w.disposed
	w.mu.Unlock()

	if disposed || w.notifier == nil {
		return
	}
	w.notifier.Notify(level, message)
}
