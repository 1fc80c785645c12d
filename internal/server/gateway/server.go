// Package gateway serves the storefront over HTTP/JSON with fiber. Routes
// and payloads match the storefront web client.
package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address     string
	corsOrigins string
	services    *services.Services
	logger      logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, s *services.Services, corsOrigins string) *HTTPServer {
	return &HTTPServer{
		address:     a,
		corsOrigins: corsOrigins,
		services:    s,
		logger:      l.With("module", "http_server"),
	}
}

// App builds the fiber application with every route registered.
func (s *HTTPServer) App() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
		BodyLimit:             10 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: s.corsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + common.AccessTokenHeaderName,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Storefront API is running")
	})

	app.Post("/signup", s.signup)
	app.Post("/login", s.login)

	app.Post("/addtocart", s.requireAuth, s.addToCart)
	app.Post("/removefromcart", s.requireAuth, s.removeFromCart)
	app.Get("/getcart", s.requireAuth, s.getCart)
	app.Post("/getcart", s.requireAuth, s.getCartData)

	app.Post("/addproduct", s.addProduct)
	app.Post("/removeproduct", s.removeProduct)
	app.Get("/allproducts", s.allProducts)
	app.Get("/newcollections", s.newCollections)
	app.Get("/popularinwomen", s.popularInWomen)

	app.Post("/upload", s.upload)
	app.Get("/images/:name", s.image)

	return app
}

func (s *HTTPServer) Run(ctx context.Context) error {
	app := s.App()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return app.Listen(s.address)
}

// fail writes the error response for a service error.
func (s *HTTPServer) fail(c *fiber.Ctx, op string, err error) error {
	code := fiber.StatusInternalServerError

	switch common.KindOf(err) {
	case common.KindValidation:
		code = fiber.StatusBadRequest
		if errors.Is(err, common.ErrDuplicateEmail) {
			code = fiber.StatusConflict
		}
	case common.KindAuth:
		code = fiber.StatusUnauthorized
	case common.KindState:
		code = fiber.StatusBadRequest
		if errors.Is(err, common.ErrNotFound) {
			code = fiber.StatusNotFound
		}
	default:
		s.logger.Error(c.UserContext(), op+" failed", "error", err)
	}

	return c.Status(code).JSON(api.ErrorResponse{Success: false, Error: common.PublicMessage(err)})
}

// errorHandler renders errors that escape a handler, e.g. unknown routes.
func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(api.ErrorResponse{Success: false, Error: fe.Message})
	}
	return s.fail(c, c.Path(), err)
}
