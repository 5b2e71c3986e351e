// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/application/usecase/harmonization"
	domainerror "github.com/duobudget/backend/internal/domain/error"
	"github.com/duobudget/backend/internal/integration/entrypoint/dto"
	"github.com/duobudget/backend/internal/integration/entrypoint/middleware"
)

// HarmonizationController handles balance and settlement endpoints.
type HarmonizationController struct {
	getBalanceUseCase       *harmonization.GetBalanceUseCase
	recordSettlementUseCase *harmonization.RecordSettlementUseCase
	listSettlementsUseCase  *harmonization.ListSettlementsUseCase
	voidSettlementUseCase   *harmonization.VoidSettlementUseCase
}

// NewHarmonizationController creates a new harmonization controller instance.
func NewHarmonizationController(
	getBalanceUseCase *harmonization.GetBalanceUseCase,
	recordSettlementUseCase *harmonization.RecordSettlementUseCase,
	listSettlementsUseCase *harmonization.ListSettlementsUseCase,
	voidSettlementUseCase *harmonization.VoidSettlementUseCase,
) *HarmonizationController {
	return &HarmonizationController{
		getBalanceUseCase:       getBalanceUseCase,
		recordSettlementUseCase: recordSettlementUseCase,
		listSettlementsUseCase:  listSettlementsUseCase,
		voidSettlementUseCase:   voidSettlementUseCase,
	}
}

// GetBalance handles GET /balance requests. The balance is recomputed
// from the current transaction and settlement sets on every call.
func (c *HarmonizationController) GetBalance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getBalanceUseCase.Execute(ctx.Request.Context(), harmonization.GetBalanceInput{
		UserID: userID,
	})
	if err != nil {
		c.handleHarmonizationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(output))
}

// RecordSettlement handles POST /settlements requests.
func (c *HarmonizationController) RecordSettlement(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.RecordSettlementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidSettlementAmount),
		})
		return
	}

	output, err := c.recordSettlementUseCase.Execute(ctx.Request.Context(), harmonization.RecordSettlementInput{
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
		Note:   req.Note,
	})
	if err != nil {
		c.handleHarmonizationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSettlementResponse(output.Settlement))
}

// ListSettlements handles GET /settlements requests.
func (c *HarmonizationController) ListSettlements(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listSettlementsUseCase.Execute(ctx.Request.Context(), harmonization.ListSettlementsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleHarmonizationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettlementListResponse(output.Settlements))
}

// VoidSettlement handles DELETE /settlements/:id requests.
func (c *HarmonizationController) VoidSettlement(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	settlementID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid settlement ID",
			Code:  string(domainerror.ErrCodeSettlementNotFound),
		})
		return
	}

	if err := c.voidSettlementUseCase.Execute(ctx.Request.Context(), harmonization.VoidSettlementInput{
		UserID:       userID,
		SettlementID: settlementID,
	}); err != nil {
		c.handleHarmonizationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleHarmonizationError handles balance and settlement errors.
func (c *HarmonizationController) handleHarmonizationError(ctx *gin.Context, err error) {
	var stlErr *domainerror.SettlementError
	if errors.As(err, &stlErr) {
		statusCode := c.getStatusCodeForSettlementError(stlErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: stlErr.Message,
			Code:  string(stlErr.Code),
		})
		return
	}

	var hrmErr *domainerror.HarmonizationError
	if errors.As(err, &hrmErr) {
		statusCode := http.StatusBadRequest
		if hrmErr.Code == domainerror.ErrCodeNoCoupleForUser {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: hrmErr.Message,
			Code:  string(hrmErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSettlementError maps settlement error codes to HTTP status codes.
func (c *HarmonizationController) getStatusCodeForSettlementError(code domainerror.SettlementErrorCode) int {
	switch code {
	case domainerror.ErrCodeSettlementNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidSettlementAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodeNotAuthorizedSettlement:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
