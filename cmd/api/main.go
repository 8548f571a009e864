package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	_ "laundry_dispatch/docs"
	"laundry_dispatch/internal/adapter/http/routes"
)

// @title           Laundry Dispatch API
// @version         1.0
// @description     Daily production planning for an industrial laundry: stage dispatch, order workflow, invoices and payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := routes.Run(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
