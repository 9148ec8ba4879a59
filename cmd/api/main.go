package main

import (
	"log"

	_ "espaco_eventos/docs"
	"espaco_eventos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Espaço de Eventos API
// @version         1.0
// @description     Quote builder for an event venue: catalog, editor sessions, proposals and deposit payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := routes.Run(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
