// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duobudget/backend/internal/application/usecase/couple"
	domainerror "github.com/duobudget/backend/internal/domain/error"
	"github.com/duobudget/backend/internal/integration/entrypoint/dto"
	"github.com/duobudget/backend/internal/integration/entrypoint/middleware"
)

// CoupleController handles couple endpoints.
type CoupleController struct {
	createCoupleUseCase *couple.CreateCoupleUseCase
	getCoupleUseCase    *couple.GetCoupleUseCase
}

// NewCoupleController creates a new couple controller instance.
func NewCoupleController(
	createCoupleUseCase *couple.CreateCoupleUseCase,
	getCoupleUseCase *couple.GetCoupleUseCase,
) *CoupleController {
	return &CoupleController{
		createCoupleUseCase: createCoupleUseCase,
		getCoupleUseCase:    getCoupleUseCase,
	}
}

// Create handles POST /couple requests. It links the authenticated user
// with the partner addressed by email.
func (c *CoupleController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCoupleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePartnerNotFound),
		})
		return
	}

	output, err := c.createCoupleUseCase.Execute(ctx.Request.Context(), couple.CreateCoupleInput{
		UserID:       userID,
		PartnerEmail: req.PartnerEmail,
	})
	if err != nil {
		c.handleCoupleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCoupleResponse(output.Couple))
}

// Get handles GET /couple requests.
func (c *CoupleController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getCoupleUseCase.Execute(ctx.Request.Context(), couple.GetCoupleInput{
		UserID: userID,
	})
	if err != nil {
		c.handleCoupleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCoupleWithPartnersResponse(output.Couple))
}

// handleCoupleError handles couple errors and returns appropriate HTTP responses.
func (c *CoupleController) handleCoupleError(ctx *gin.Context, err error) {
	var coupleErr *domainerror.CoupleError
	if errors.As(err, &coupleErr) {
		statusCode := c.getStatusCodeForCoupleError(coupleErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: coupleErr.Message,
			Code:  string(coupleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCoupleError maps couple error codes to HTTP status codes.
func (c *CoupleController) getStatusCodeForCoupleError(code domainerror.CoupleErrorCode) int {
	switch code {
	case domainerror.ErrCodeCoupleNotFound,
		domainerror.ErrCodePartnerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAlreadyInCouple:
		return http.StatusConflict
	case domainerror.ErrCodeSelfPartner:
		return http.StatusBadRequest
	case domainerror.ErrCodeNotACoupleMember:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
