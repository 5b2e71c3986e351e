// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/application/usecase/subscription"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
	"github.com/duobudget/backend/internal/integration/entrypoint/dto"
	"github.com/duobudget/backend/internal/integration/entrypoint/middleware"
)

// SubscriptionController handles recurring-charge endpoints.
type SubscriptionController struct {
	getOverviewUseCase   *subscription.GetOverviewUseCase
	upsertSettingUseCase *subscription.UpsertSettingUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(
	getOverviewUseCase *subscription.GetOverviewUseCase,
	upsertSettingUseCase *subscription.UpsertSettingUseCase,
) *SubscriptionController {
	return &SubscriptionController{
		getOverviewUseCase:   getOverviewUseCase,
		upsertSettingUseCase: upsertSettingUseCase,
	}
}

// GetOverview handles GET /subscriptions requests. The optional month and
// year query parameters select the projection month; both default to the
// current month.
func (c *SubscriptionController) GetOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := subscription.GetOverviewInput{UserID: userID}

	if month := ctx.Query("month"); month != "" {
		parsed, err := strconv.Atoi(month)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month parameter",
				Code:  string(domainerror.ErrCodeInvalidTargetMonth),
			})
			return
		}
		input.Month = parsed
	}
	if year := ctx.Query("year"); year != "" {
		parsed, err := strconv.Atoi(year)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year parameter",
				Code:  string(domainerror.ErrCodeInvalidTargetMonth),
			})
			return
		}
		input.Year = parsed
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionOverviewResponse(output))
}

// UpsertSetting handles PUT /subscriptions/settings requests.
func (c *SubscriptionController) UpsertSetting(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpsertSubscriptionSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	input := subscription.UpsertSettingInput{
		UserID:    userID,
		Label:     req.Label,
		Amount:    decimal.NewFromFloat(req.Amount),
		IsShared:  req.IsShared,
		Frequency: entity.BillingFrequency(req.Frequency),
	}

	if req.PayerUserID != nil {
		payerID, err := uuid.Parse(*req.PayerUserID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payer user ID",
				Code:  string(domainerror.ErrCodePayerNotInCouple),
			})
			return
		}
		input.PayerUserID = payerID
	}

	output, err := c.upsertSettingUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionSettingResponse(output.Setting))
}

// handleSubscriptionError handles subscription errors and returns appropriate HTTP responses.
func (c *SubscriptionController) handleSubscriptionError(ctx *gin.Context, err error) {
	var subErr *domainerror.SubscriptionError
	if errors.As(err, &subErr) {
		statusCode := c.getStatusCodeForSubscriptionError(subErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: subErr.Message,
			Code:  string(subErr.Code),
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

// getStatusCodeForSubscriptionError maps subscription error codes to HTTP status codes.
func (c *SubscriptionController) getStatusCodeForSubscriptionError(code domainerror.SubscriptionErrorCode) int {
	switch code {
	case domainerror.ErrCodeSettingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeInvalidTargetMonth,
		domainerror.ErrCodePayerNotInCouple:
		return http.StatusBadRequest
	case domainerror.ErrCodePartnerChargeNotEditable:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
