package main

import (
	_ "glassfleet/docs"
	"glassfleet/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Fleet Windshield Repair API
// @version         1.0
// @description     Repair lifecycle + progressive pricing engine backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
