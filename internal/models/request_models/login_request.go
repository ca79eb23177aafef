package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6,max=72"`
}

// CreateStaffRequest is the admin form for a new staff account.
type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// BulkDeleteRequest ids are checked one by one; a malformed id becomes a
// failed outcome instead of rejecting the batch.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// StageActionRequest stages a bulk action awaiting confirmation.
type StageActionRequest struct {
	Kind string   `json:"kind" binding:"required,oneof=delete_users delete_staff delete_places"`
	IDs  []string `json:"ids" binding:"required,min=1,dive,required"`
}
