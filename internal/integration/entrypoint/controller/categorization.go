// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/usecase/categorization"
	domainerror "github.com/duobudget/backend/internal/domain/error"
	"github.com/duobudget/backend/internal/integration/entrypoint/dto"
	"github.com/duobudget/backend/internal/integration/entrypoint/middleware"
)

// CategorizationController handles AI category suggestion endpoints.
type CategorizationController struct {
	suggestUseCase *categorization.SuggestCategoriesUseCase
	listUseCase    *categorization.ListSuggestionsUseCase
	approveUseCase *categorization.ApproveSuggestionUseCase
	rejectUseCase  *categorization.RejectSuggestionUseCase
}

// NewCategorizationController creates a new categorization controller instance.
func NewCategorizationController(
	suggestUseCase *categorization.SuggestCategoriesUseCase,
	listUseCase *categorization.ListSuggestionsUseCase,
	approveUseCase *categorization.ApproveSuggestionUseCase,
	rejectUseCase *categorization.RejectSuggestionUseCase,
) *CategorizationController {
	return &CategorizationController{
		suggestUseCase: suggestUseCase,
		listUseCase:    listUseCase,
		approveUseCase: approveUseCase,
		rejectUseCase:  rejectUseCase,
	}
}

// Suggest handles POST /categorization/suggest requests. It sends the
// couple's uncategorized transactions to the AI service and stores the
// results as pending suggestions.
func (c *CategorizationController) Suggest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), categorization.SuggestCategoriesInput{
		UserID: userID,
	})
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategorySuggestionListResponse(output.Suggestions))
}

// List handles GET /categorization/suggestions requests.
func (c *CategorizationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), categorization.ListSuggestionsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySuggestionListResponse(output.Suggestions))
}

// Approve handles POST /categorization/suggestions/:id/approve requests.
func (c *CategorizationController) Approve(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	suggestionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid suggestion ID",
			Code:  string(domainerror.ErrCodeSuggestionNotFound),
		})
		return
	}

	// The body is optional; a missing or empty body keeps the suggested
	// category.
	var req dto.ApproveSuggestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		req = dto.ApproveSuggestionRequest{}
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), categorization.ApproveSuggestionInput{
		UserID:       userID,
		SuggestionID: suggestionID,
		Category:     req.Category,
	})
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySuggestionResponse(output.Suggestion))
}

// Reject handles POST /categorization/suggestions/:id/reject requests.
func (c *CategorizationController) Reject(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	suggestionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid suggestion ID",
			Code:  string(domainerror.ErrCodeSuggestionNotFound),
		})
		return
	}

	if err := c.rejectUseCase.Execute(ctx.Request.Context(), categorization.RejectSuggestionInput{
		UserID:       userID,
		SuggestionID: suggestionID,
	}); err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSuggestionError handles suggestion errors and returns appropriate HTTP responses.
func (c *CategorizationController) handleSuggestionError(ctx *gin.Context, err error) {
	var sgtErr *domainerror.SuggestionError
	if errors.As(err, &sgtErr) {
		statusCode := c.getStatusCodeForSuggestionError(sgtErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: sgtErr.Message,
			Code:  string(sgtErr.Code),
		})
		return
	}

	var hrmErr *domainerror.HarmonizationError
	if errors.As(err, &hrmErr) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: hrmErr.Message,
			Code:  string(hrmErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSuggestionError maps suggestion error codes to HTTP status codes.
func (c *CategorizationController) getStatusCodeForSuggestionError(code domainerror.SuggestionErrorCode) int {
	switch code {
	case domainerror.ErrCodeSuggestionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSuggestionAlreadyResolved:
		return http.StatusConflict
	case domainerror.ErrCodeAIServiceUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeNoUncategorized:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
