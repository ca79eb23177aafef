package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"pahunapath/internal/models/db_models"
	"pahunapath/internal/models/request_models"
	"pahunapath/internal/services"
	"pahunapath/pkg/utils"
)

// AdminController backs the admin panel: user and staff management, staged
// bulk actions and the dashboard.
type AdminController struct {
	accountService   services.AccountServiceInterface
	actionService    services.AdminActionService
	dashboardService services.DashboardService
}

func NewAdminController(
	accountService services.AccountServiceInterface,
	actionService services.AdminActionService,
	dashboardService services.DashboardService) *AdminController {
	return &AdminController{
		accountService:   accountService,
		actionService:    actionService,
		dashboardService: dashboardService,
	}
}

func (a *AdminController) ListUsers(c *gin.Context) {
	a.listRole(c, db_models.RoleUser)
}

func (a *AdminController) ListStaff(c *gin.Context) {
	a.listRole(c, db_models.RoleStaff)
}

func (a *AdminController) listRole(c *gin.Context, role string) {
	accounts, err := a.accountService.ListAccounts(c.Request.Context(), role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Accounts fetched successfully")
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Removes the user together with the places and reviews they posted
// @Tags Admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (a *AdminController) DeleteUser(c *gin.Context) {
	a.deleteRole(c, db_models.RoleUser, "User deleted successfully")
}

func (a *AdminController) DeleteStaff(c *gin.Context) {
	a.deleteRole(c, db_models.RoleStaff, "Staff deleted successfully")
}

func (a *AdminController) deleteRole(c *gin.Context, role, message string) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := a.accountService.DeleteAccount(c.Request.Context(), id, role); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, message)
}

// BulkDeleteUsers godoc
// @Summary Delete several users
// @Description Deletes every id independently and reports a per-id outcome
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.BulkDeleteRequest true "IDs"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/bulk-delete [post]
func (a *AdminController) BulkDeleteUsers(c *gin.Context) {
	a.bulkDeleteRole(c, db_models.RoleUser)
}

func (a *AdminController) BulkDeleteStaff(c *gin.Context) {
	a.bulkDeleteRole(c, db_models.RoleStaff)
}

func (a *AdminController) bulkDeleteRole(c *gin.Context, role string) {
	var req request_models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result := a.accountService.BulkDeleteAccounts(c.Request.Context(), req.IDs, role)
	utils.RespondSuccess(c, result, bulkMessage(result.Deleted, result.Failed))
}

func (a *AdminController) CreateStaff(c *gin.Context) {
	var req request_models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	staff, err := a.accountService.CreateStaff(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, staff, "Staff created successfully")
}

// StageAction godoc
// @Summary Stage a bulk action
// @Description Returns a confirmation token and a human-readable description; nothing is deleted until the token is confirmed
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.StageActionRequest true "Action"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/pending [post]
func (a *AdminController) StageAction(c *gin.Context) {
	var req request_models.StageActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pending, err := a.actionService.Stage(c.Request.Context(), req.Kind, req.IDs, callerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pending, "Action awaiting confirmation")
}

func (a *AdminController) ConfirmAction(c *gin.Context) {
	result, err := a.actionService.Confirm(c.Request.Context(), c.Param("token"), callerID(c), callerRole(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, bulkMessage(result.Deleted, result.Failed))
}

func (a *AdminController) CancelAction(c *gin.Context) {
	if err := a.actionService.Cancel(c.Param("token"), callerID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Action cancelled")
}

func (a *AdminController) GetDashboard(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 || days > 365 {
		utils.RespondValidation(c, map[string]string{"days": "Days must be between 1 and 365"})
		return
	}

	report, err := a.dashboardService.BuildDashboard(c.Request.Context(), days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard fetched successfully")
}

func bulkMessage(deleted, failed int) string {
	switch {
	case failed == 0:
		return "Deleted " + strconv.Itoa(deleted) + " record(s)"
	case deleted == 0:
		return "No records deleted"
	default:
		return "Deleted " + strconv.Itoa(deleted) + " record(s), " + strconv.Itoa(failed) + " failed"
	}
}
