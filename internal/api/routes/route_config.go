package routes

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/internal/api/handlers"
	"My-Supps-Backend/internal/middleware"
	"My-Supps-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	CatalogHandler    handlers.CatalogHandler
	MySuppsHandler    handlers.MySuppsHandler
	ProfileHandler    handlers.ProfileHandler
	SimulationHandler handlers.SimulationHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Catalog()
	c.User()
	c.MySupps()
	c.Simulation()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageSuccessPing})
	})
}

func (c *Config) Catalog() {
	c.App.Get("/api/v1/nutrients", c.CatalogHandler.GetNutrients)

	supplements := c.App.Group("/api/v1/supplements")
	{
		supplements.Get("", c.CatalogHandler.GetSupplements)
		supplements.Post("/lookup", c.CatalogHandler.LookupSupplement)
		supplements.Get("/:id", c.CatalogHandler.GetSupplementDetail)
	}
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users/me", c.Middleware.AuthMiddleware(c.JWTService))
	{
		user.Get("/profile", c.ProfileHandler.GetProfile)
		user.Put("/profile", c.ProfileHandler.UpdateProfile)
	}
}

func (c *Config) MySupps() {
	mySupps := c.App.Group("/api/v1/my-supps", c.Middleware.AuthMiddleware(c.JWTService))
	mySupps.Get("", c.MySuppsHandler.GetMySupps)
	mySupps.Post("", c.MySuppsHandler.AddMySupp)
	mySupps.Patch("/:id", c.MySuppsHandler.UpdateMySupp)
	mySupps.Delete("/:id", c.MySuppsHandler.RemoveMySupp)
}

func (c *Config) Simulation() {
	simulation := c.App.Group("/api/v1/simulation", c.Middleware.AuthMiddleware(c.JWTService))
	simulation.Get("", c.SimulationHandler.GetSimulation)
	simulation.Delete("", c.SimulationHandler.Clear)
	simulation.Post("/products", c.SimulationHandler.AddProduct)
	simulation.Delete("/products/:id", c.SimulationHandler.RemoveProduct)
	simulation.Put("/weight", c.SimulationHandler.SetWeight)
	simulation.Post("/run", c.SimulationHandler.Run)
}
