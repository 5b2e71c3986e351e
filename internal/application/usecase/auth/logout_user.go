// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/duobudget/backend/internal/application/adapter"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokenService: tokenService}
}

// Execute revokes the refresh token. Access tokens stay valid until they
// expire; only the refresh chain is cut.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	if input.RefreshToken == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"refresh token is required",
			domainerror.ErrMissingToken,
		)
	}

	return uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken)
}
