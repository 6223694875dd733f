package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	user "user-api/internal"
	"user-api/pkg/config"
	"user-api/pkg/hasher"
	"user-api/pkg/jwt_generator"
	"user-api/pkg/logger"
	"user-api/pkg/server"
)

func main() {
	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func(l *zap.SugaredLogger) {
		err := l.Sync()
		if err != nil {
			panic(err)
		}
	}(log)

	isAtRemote := os.Getenv(config.IsAtRemote)
	if isAtRemote == "" {
		err := godotenv.Load()
		if err != nil {
			log.Fatalw(
				"failed to load .env file",
				zap.Error(err),
			)
		}
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		panic(err)
	}
	cfg.Print()

	var jwtGenerator jwt_generator.JwtGenerator
	jwtGenerator, err = jwt_generator.NewJwtGenerator(cfg.Jwt)
	if err != nil {
		log.Fatalw(
			"failed to create jwt generator",
			zap.Error(err),
		)
	}

	ctx := context.Background()
	db, err := setupPostgresClient(ctx, cfg)
	if err != nil {
		log.Fatalw(
			"failed to setup postgres client",
			zap.Error(err),
		)
	}

	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			log.Fatalw(
				"failed to close postgres client",
				zap.Error(err),
			)
		}
	}(db)

	userRepository := user.NewRepository(db)
	err = userRepository.Migrate(ctx)
	if err != nil {
		log.Fatalw(
			"failed to migrate users table",
			zap.Error(err),
		)
	}

	passwordHasher := hasher.NewHasher()
	userService := user.NewService(userRepository, jwtGenerator, passwordHasher)
	userHandler := user.NewHandler(userService, jwtGenerator)

	if os.Getenv(config.SeedDefaultUsers) == "true" {
		err = userService.SeedDefaultUsers(logger.InjectContext(ctx, log))
		if err != nil {
			log.Fatalw(
				"failed to seed default users",
				zap.Error(err),
			)
		}
	}

	var handlers []server.Handler
	handlers = append(handlers, userHandler)
	srv := server.NewServer(cfg, handlers)

	logMiddleware := logger.Middleware(log)
	app := srv.GetFiberInstance()
	app.Use(cors.New())
	app.Use(logMiddleware)
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString("OK")
	})

	srv.RegisterRoutes()

	if isAtRemote == "" {
		err = srv.Start()
		if err != nil {
			panic(err)
		}
	} else {
		lambda.Start(srv.LambdaProxyHandler)
	}
}

func setupPostgresClient(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.Url)
	if err != nil {
		return nil, err
	}

	err = db.PingContext(ctx)
	if err != nil {
		return nil, err
	}

	return db, nil
}
