package response_models

// DeleteOutcome is the result for one id of a bulk delete.
type DeleteOutcome struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

type BulkDeleteResult struct {
	Requested int             `json:"requested"`
	Deleted   int             `json:"deleted"`
	Failed    int             `json:"failed"`
	Outcomes  []DeleteOutcome `json:"outcomes"`
}

type PendingAction struct {
	Token       string   `json:"token"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	IDs         []string `json:"ids"`
	ExpiresAt   string   `json:"expires_at"`
}
