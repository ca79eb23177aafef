package listing

import (
	"context"
	"errors"
)

var (
	ErrConfirmBusy    = errors.New("another action is awaiting confirmation")
	ErrNothingToDo    = errors.New("no action is awaiting confirmation")
	ErrEmptySelection = errors.New("nothing selected")
)

type ConfirmState int

const (
	Idle ConfirmState = iota
	PendingConfirm
	Executing
)

func (s ConfirmState) String() string {
	switch s {
	case PendingConfirm:
		return "pending"
	case Executing:
		return "executing"
	default:
		return "idle"
	}
}

type ActionKind string

const (
	DeleteOne  ActionKind = "delete"
	DeleteMany ActionKind = "bulk_delete"
)

// PendingAction is what the user is being asked to confirm.
type PendingAction struct {
	Kind        ActionKind
	Description string
	IDs         []string
}

// Confirm guards destructive actions behind an explicit yes. It moves
// idle -> pending on Request, back to idle on Cancel, and through executing
// to idle on Execute.
type Confirm struct {
	state   ConfirmState
	pending PendingAction
}

func (c *Confirm) State() ConfirmState {
	return c.state
}

func (c *Confirm) Pending() (PendingAction, bool) {
	if c.state != PendingConfirm {
		return PendingAction{}, false
	}
	return c.pending, true
}

func (c *Confirm) Request(kind ActionKind, description string, ids []string) error {
	if c.state != Idle {
		return ErrConfirmBusy
	}
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	if kind == DeleteOne && len(ids) != 1 {
		kind = DeleteMany
	}

	c.pending = PendingAction{Kind: kind, Description: description, IDs: append([]string(nil), ids...)}
	c.state = PendingConfirm
	return nil
}

// Cancel drops the pending action without touching anything.
func (c *Confirm) Cancel() {
	if c.state == PendingConfirm {
		c.pending = PendingAction{}
		c.state = Idle
	}
}

// Execute runs the pending action. Ids that were deleted leave sel; ids
// that failed stay selected so the user can retry them.
func (c *Confirm) Execute(ctx context.Context, del Deleter, sel *Selection) (BatchReport, error) {
	if c.state != PendingConfirm {
		return BatchReport{}, ErrNothingToDo
	}
	action := c.pending
	c.state = Executing
	defer func() {
		c.pending = PendingAction{}
		c.state = Idle
	}()

	var report BatchReport
	if bulk, ok := del.(BulkDeleter); ok && action.Kind == DeleteMany {
		r, err := bulk.DeleteMany(ctx, action.IDs)
		if err != nil {
			return BatchReport{}, err
		}
		report = r
	} else {
		report = BatchDelete(ctx, action.IDs, del)
	}

	if sel != nil {
		sel.Remove(report.Succeeded()...)
	}
	return report, nil
}
