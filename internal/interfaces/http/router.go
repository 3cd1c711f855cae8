package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/importador-clientes/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ImportHandler   *ImportHandler
	CustomerHandler *CustomerHandler
	JWTSecret       string
	JWTIssuer       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	customers := protected.Group("/customers")
	customers.Post("/import", RequireRole(jwt.RoleAdmin, jwt.RoleOperador), deps.ImportHandler.Import)
	customers.Get("/", RequireRole(jwt.RoleAdmin, jwt.RoleOperador, jwt.RoleLector), deps.CustomerHandler.List)
	customers.Get("/:tax_id", RequireRole(jwt.RoleAdmin, jwt.RoleOperador, jwt.RoleLector), deps.CustomerHandler.GetByTaxID)
}
