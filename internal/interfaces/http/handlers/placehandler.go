package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atomichabits/internal/application/habit/usecases"
	"atomichabits/internal/shared/constants"
	"atomichabits/internal/shared/logger"
	"atomichabits/internal/shared/utils"
)

// PlaceHandler serves the shared place catalog. Places are not owned by
// anyone; any authenticated user may manage them.
type PlaceHandler struct {
	createUseCase *usecases.CreatePlaceUseCase
	getUseCase    *usecases.GetPlaceUseCase
	listUseCase   *usecases.ListPlacesUseCase
	updateUseCase *usecases.UpdatePlaceUseCase
	deleteUseCase *usecases.DeletePlaceUseCase
	logger        logger.Interface
}

func NewPlaceHandler(
	createUC *usecases.CreatePlaceUseCase,
	getUC *usecases.GetPlaceUseCase,
	listUC *usecases.ListPlacesUseCase,
	updateUC *usecases.UpdatePlaceUseCase,
	deleteUC *usecases.DeletePlaceUseCase,
	logger logger.Interface,
) *PlaceHandler {
	return &PlaceHandler{
		createUseCase: createUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type PlaceRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

func (h *PlaceHandler) Create(c *gin.Context) {
	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToFieldErrors(err))
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreatePlaceCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Place created")
}

func (h *PlaceHandler) Get(c *gin.Context) {
	placeID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetPlaceQuery{PlaceID: placeID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlaceHandler) List(c *gin.Context) {
	pagination := utils.ParseFixedPagination(c, constants.PlacePageSize)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListPlacesQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Places, result.Total, pagination.Page, pagination.PageSize)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	placeID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingErrorToFieldErrors(err))
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdatePlaceCommand{
		PlaceID:     placeID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Place updated", result)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	placeID, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeletePlaceCommand{PlaceID: placeID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
