package main

import (
	_ "oficina_xpto/docs"
	"oficina_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina API
// @version         1.0
// @description     Workshop management API (clientes, veículos, oficinas, orçamentos, ordens de serviço e pagamentos) backed by PostgreSQL.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /rest

func main() {
	routes.Run()
}
