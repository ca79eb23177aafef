package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"pahunapath/internal/models/response_models"
)

// bulkDelete runs del once per id, in order, and records every outcome.
// A failing id does not stop the rest of the batch.
func bulkDelete(ctx context.Context, ids []string, del func(context.Context, uuid.UUID) error) response_models.BulkDeleteResult {
	result := response_models.BulkDeleteResult{
		Requested: len(ids),
		Outcomes:  make([]response_models.DeleteOutcome, 0, len(ids)),
	}

	for _, raw := range ids {
		outcome := response_models.DeleteOutcome{ID: raw}

		id, err := uuid.Parse(raw)
		switch {
		case err != nil:
			outcome.Error = "invalid id"
		case ctx.Err() != nil:
			outcome.Error = ctx.Err().Error()
		default:
			if err := del(ctx, id); err != nil {
				outcome.Error = err.Error()
			} else {
				outcome.Deleted = true
			}
		}

		if outcome.Deleted {
			result.Deleted++
		} else {
			result.Failed++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result
}

func describe(verb string, n int, noun string, labels []string) string {
	if n != 1 && noun != "staff" {
		noun += "s"
	}
	return fmt.Sprintf("%s %d %s: %s", verb, n, noun, strings.Join(labels, ", "))
}
