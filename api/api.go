package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// APIServer owns the fiber engine and its listen address
type APIServer struct {
	app           *fiber.App
	listenAddress string
}

// NewAPIServer creates the fiber engine behind the campus API
func NewAPIServer(listenAddress string) *APIServer {
	return &APIServer{
		app: fiber.New(fiber.Config{
			AppName: "campus-api",
		}),
		listenAddress: listenAddress,
	}
}

// GetEngine exposes the fiber app for middleware and route registration
func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

// Run blocks serving requests until the listener fails or is shut down
func (s *APIServer) Run() error {
	log.Printf("API server listening on %s", s.listenAddress)
	return s.app.Listen(s.listenAddress)
}

// Shutdown drains in-flight requests and closes the listener
func (s *APIServer) Shutdown() error {
	return s.app.Shutdown()
}
