package listing

import (
	"context"
	"fmt"
	"strings"
)

// Deleter removes one record by id.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

type DeleterFunc func(ctx context.Context, id string) error

func (f DeleterFunc) Delete(ctx context.Context, id string) error {
	return f(ctx, id)
}

// BulkDeleter is implemented by deleters that can remove several ids in one
// request and still report per-id outcomes.
type BulkDeleter interface {
	Deleter
	DeleteMany(ctx context.Context, ids []string) (BatchReport, error)
}

type Outcome struct {
	ID  string
	Err error
}

type BatchStatus int

const (
	BatchEmpty BatchStatus = iota
	BatchComplete
	BatchPartial
	BatchFailed
)

func (s BatchStatus) String() string {
	switch s {
	case BatchComplete:
		return "complete"
	case BatchPartial:
		return "partial"
	case BatchFailed:
		return "failed"
	default:
		return "empty"
	}
}

// BatchReport lists what happened to every requested id, in request order.
type BatchReport struct {
	Outcomes []Outcome
}

func (r BatchReport) Succeeded() []string {
	var ids []string
	for _, o := range r.Outcomes {
		if o.Err == nil {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

func (r BatchReport) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

func (r BatchReport) Status() BatchStatus {
	if len(r.Outcomes) == 0 {
		return BatchEmpty
	}
	failed := len(r.Failed())
	switch {
	case failed == 0:
		return BatchComplete
	case failed == len(r.Outcomes):
		return BatchFailed
	default:
		return BatchPartial
	}
}

func (r BatchReport) Summary() string {
	ok, failed := len(r.Succeeded()), len(r.Failed())
	switch r.Status() {
	case BatchComplete:
		return fmt.Sprintf("Deleted %d of %d", ok, len(r.Outcomes))
	case BatchPartial:
		return fmt.Sprintf("Deleted %d of %d, %d failed", ok, len(r.Outcomes), failed)
	case BatchFailed:
		return fmt.Sprintf("Nothing deleted, %d failed", failed)
	default:
		return "Nothing to delete"
	}
}

// Detail renders one line per failed id.
func (r BatchReport) Detail() string {
	var b strings.Builder
	for _, o := range r.Failed() {
		fmt.Fprintf(&b, "  %s: %v\n", o.ID, o.Err)
	}
	return b.String()
}

// BatchDelete deletes ids one after another. A failure is recorded and the
// loop moves on; once ctx is done the remaining ids are reported with the
// context error without being attempted.
func BatchDelete(ctx context.Context, ids []string, del Deleter) BatchReport {
	report := BatchReport{Outcomes: make([]Outcome, 0, len(ids))}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			report.Outcomes = append(report.Outcomes, Outcome{ID: id, Err: err})
			continue
		}
		report.Outcomes = append(report.Outcomes, Outcome{ID: id, Err: del.Delete(ctx, id)})
	}
	return report
}
