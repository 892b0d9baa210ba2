package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atomichabits/internal/application/habit/usecases"
	"atomichabits/internal/shared/constants"
	"atomichabits/internal/shared/logger"
	"atomichabits/internal/shared/utils"
)

type HabitHandler struct {
	createUseCase     *usecases.CreateHabitUseCase
	getUseCase        *usecases.GetHabitUseCase
	listUseCase       *usecases.ListHabitsUseCase
	listPublicUseCase *usecases.ListPublicHabitsUseCase
	updateUseCase     *usecases.UpdateHabitUseCase
	deleteUseCase     *usecases.DeleteHabitUseCase
	logger            logger.Interface
}

func NewHabitHandler(
	createUC *usecases.CreateHabitUseCase,
	getUC *usecases.GetHabitUseCase,
	listUC *usecases.ListHabitsUseCase,
	listPublicUC *usecases.ListPublicHabitsUseCase,
	updateUC *usecases.UpdateHabitUseCase,
	deleteUC *usecases.DeleteHabitUseCase,
	logger logger.Interface,
) *HabitHandler {
	return &HabitHandler{
		createUseCase:     createUC,
		getUseCase:        getUC,
		listUseCase:       listUC,
		listPublicUseCase: listPublicUC,
		updateUseCase:     updateUC,
		deleteUseCase:     deleteUC,
		logger:            logger,
	}
}

// CreateHabitRequest mirrors CreateHabitCommand. Business-rule validation
// lives in the domain; binding tags only reject structurally broken input.
type CreateHabitRequest struct {
	PlaceID         *uint  `json:"place_id"`
	Time            string `json:"time" binding:"required"`
	Action          string `json:"action" binding:"required,max=255"`
	IsPleasant      bool   `json:"is_pleasant"`
	RelatedHabitID  *uint  `json:"related_habit_id"`
	Periodicity     int    `json:"periodicity"`
	Reward          string `json:"reward" binding:"max=255"`
	DurationSeconds *int   `json:"duration"`
	IsPublic        bool   `json:"is_public"`
}

// UpdateHabitRequest is a partial update; absent fields keep their stored
// values. A zero place_id or related_habit_id clears the reference.
type UpdateHabitRequest struct {
	PlaceID         *uint   `json:"place_id"`
	Time            *string `json:"time"`
	Action          *string `json:"action" binding:"omitempty,max=255"`
	IsPleasant      *bool   `json:"is_pleasant"`
	RelatedHabitID  *uint   `json:"related_habit_id"`
	Periodicity     *int    `json:"periodicity"`
	Reward          *string `json:"reward" binding:"omitempty,max=255"`
	DurationSeconds *int    `json:"duration"`
	IsPublic        *bool   `json:"is_public"`
}

func (h *HabitHandler) Create(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}

	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToFieldErrors(err))
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateHabitCommand{
		OwnerID:         ownerID,
		PlaceID:         req.PlaceID,
		Time:            req.Time,
		Action:          req.Action,
		IsPleasant:      req.IsPleasant,
		RelatedHabitID:  req.RelatedHabitID,
		Periodicity:     req.Periodicity,
		Reward:          req.Reward,
		DurationSeconds: req.DurationSeconds,
		IsPublic:        req.IsPublic,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Habit created")
}

func (h *HabitHandler) Get(c *gin.Context) {
	habitID, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetHabitQuery{
		HabitID: habitID,
		ActorID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List returns the caller's habits, five per page.
func (h *HabitHandler) List(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	pagination := utils.ParseFixedPagination(c, constants.HabitPageSize)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListHabitsQuery{
		OwnerID:  userID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Habits, result.Total, pagination.Page, pagination.PageSize)
}

// ListPublic returns habits any user chose to share.
func (h *HabitHandler) ListPublic(c *gin.Context) {
	pagination := utils.ParseFixedPagination(c, constants.HabitPageSize)

	result, err := h.listPublicUseCase.Execute(c.Request.Context(), usecases.ListPublicHabitsQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Habits, result.Total, pagination.Page, pagination.PageSize)
}

func (h *HabitHandler) Update(c *gin.Context) {
	habitID, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToFieldErrors(err))
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateHabitCommand{
		HabitID:         habitID,
		ActorID:         userID,
		PlaceID:         req.PlaceID,
		Time:            req.Time,
		Action:          req.Action,
		IsPleasant:      req.IsPleasant,
		RelatedHabitID:  req.RelatedHabitID,
		Periodicity:     req.Periodicity,
		Reward:          req.Reward,
		DurationSeconds: req.DurationSeconds,
		IsPublic:        req.IsPublic,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Habit updated", result)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	habitID, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteHabitCommand{
		HabitID: habitID,
		ActorID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
