package user

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"user-api/pkg/cerror"
	"user-api/pkg/jwt_generator"
	"user-api/pkg/logger"
	"user-api/pkg/server"
)

type handler struct {
	userService  Service
	jwtGenerator jwt_generator.JwtGenerator
	validate     *validator.Validate
}

func NewHandler(userService Service, jwtGenerator jwt_generator.JwtGenerator) server.Handler {
	return &handler{
		userService:  userService,
		jwtGenerator: jwtGenerator,
		validate:     validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/login", h.Login)
	app.Post("/user", h.Register)
	app.Get("/user/profile", NewAuthMiddleware(h.jwtGenerator), h.GetProfile)
	app.Get("/user/:userId", NewAuthMiddleware(h.jwtGenerator, RoleAdmin), h.GetUserById)
	app.Get("/users", NewAuthMiddleware(h.jwtGenerator, RoleAdmin), h.ListUsers)
}

func (h *handler) Login(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "loginWithEmail"))
	ctx.Locals(logger.ContextKey, log)

	var payload LoginPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	loginResult, err := h.userService.Login(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(loginResult)
}

func (h *handler) Register(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "registerWithEmail"))
	ctx.Locals(logger.ContextKey, log)

	var payload RegisterPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	registerResult, err := h.userService.Register(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(registerResult)
}

func (h *handler) GetProfile(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getProfile"))
	ctx.Locals(logger.ContextKey, log)

	identity, isOk := IdentityFromContext(ctx)
	if !isOk {
		return cerror.ErrorAuthenticationRequired
	}

	foundUser, err := h.userService.GetUserById(ctx.Context(), identity.Id)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(foundUser)
}

func (h *handler) GetUserById(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")
	log := logger.FromContext(ctx.Context()).
		With(
			zap.String("eventName", "getUserById"),
			zap.String("userId", userId),
		)
	ctx.Locals(logger.ContextKey, log)

	foundUser, err := h.userService.GetUserById(ctx.Context(), userId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(foundUser)
}

func (h *handler) ListUsers(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "listUsers"))
	ctx.Locals(logger.ContextKey, log)

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", DefaultPageLimit)

	userPage, err := h.userService.ListUsers(ctx.Context(), page, limit)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(userPage)
}
