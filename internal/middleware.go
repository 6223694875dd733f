package user

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"user-api/pkg/cerror"
	"user-api/pkg/jwt_generator"
)

const ContextUserKey = "authenticatedUser"

// NewAuthMiddleware verifies the bearer token and enforces the required-role
// policy. Verification is stateless and runs on every request; nothing is
// cached between requests.
func NewAuthMiddleware(jwtGenerator jwt_generator.JwtGenerator, requiredRoles ...Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authorizationHeader := ctx.Get(fiber.HeaderAuthorization)
		if authorizationHeader == "" {
			return cerror.ErrorAuthenticationRequired
		}

		rawToken := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, "Bearer"))
		if rawToken == "" {
			return cerror.ErrorAuthenticationRequired
		}

		claims, err := jwtGenerator.VerifyToken(rawToken)
		if err != nil {
			if errors.Is(err, jwt_generator.ErrTokenExpired) {
				return cerror.ErrorTokenExpired
			}

			return cerror.ErrorInvalidToken
		}

		// Refresh tokens are never accepted where an access token is expected.
		if claims.TokenType == jwt_generator.TokenTypeRefresh {
			return cerror.ErrorInvalidToken
		}

		identity := Identity{
			Id:    claims.Subject,
			Email: claims.Email,
			Role:  Role(claims.Role),
		}

		if !identity.Role.OneOf(requiredRoles...) {
			return cerror.ErrorInsufficientPermissions.WithFields(
				zap.String("userId", identity.Id),
				zap.String("role", string(identity.Role)),
			)
		}

		ctx.Locals(ContextUserKey, identity)
		return ctx.Next()
	}
}

func IdentityFromContext(ctx *fiber.Ctx) (Identity, bool) {
	identity, isOk := ctx.Locals(ContextUserKey).(Identity)
	return identity, isOk
}
