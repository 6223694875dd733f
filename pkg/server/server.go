package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/events"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"user-api/pkg/cerror"
	"user-api/pkg/config"
)

// Handler is anything that can mount its routes on the shared fiber app.
type Handler interface {
	RegisterRoutes(app *fiber.App)
}

type Server interface {
	GetFiberInstance() *fiber.App
	Start() error
	Shutdown() error
	RegisterRoutes()
	LambdaProxyHandler(
		ctx context.Context,
		req events.APIGatewayProxyRequest,
	) (events.APIGatewayProxyResponse, error)
}

type server struct {
	serverPort         string
	handlers           []Handler
	fiber              *fiber.App
	fiberLambdaAdapter *fiberadapter.FiberLambda
}

// NewServer builds the fiber app with the goccy JSON codec and the cerror
// error handler, plus a Lambda adapter around the same app so both entry
// paths serve identical routes.
func NewServer(config *config.Config, handlers []Handler) Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          cerror.Middleware,
	})

	return &server{
		fiber:              app,
		handlers:           handlers,
		serverPort:         config.ServerPort,
		fiberLambdaAdapter: fiberadapter.New(app),
	}
}

// Start blocks on Listen until a SIGINT or SIGTERM triggers a graceful
// fiber shutdown; in-flight requests finish before Listen returns.
func (s *server) Start() error {
	shutdownChannel := make(chan os.Signal, 1)
	signal.Notify(shutdownChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-shutdownChannel
		_ = s.fiber.Shutdown()
	}()

	return s.fiber.Listen(fmt.Sprintf(":%s", s.serverPort))
}

func (s *server) Shutdown() error {
	return s.fiber.Shutdown()
}

func (s *server) GetFiberInstance() *fiber.App {
	return s.fiber
}

func (s *server) RegisterRoutes() {
	for _, handler := range s.handlers {
		handler.RegisterRoutes(s.fiber)
	}
}

// LambdaProxyHandler translates an API Gateway proxy event into a fiber
// request when the binary runs as a Lambda function.
func (s *server) LambdaProxyHandler(
	ctx context.Context,
	req events.APIGatewayProxyRequest,
) (events.APIGatewayProxyResponse, error) {
	return s.fiberLambdaAdapter.ProxyWithContext(ctx, req)
}
