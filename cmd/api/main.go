package main

import (
	_ "payment-gateway/docs"
	"payment-gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Gateway API
// @version         1.0
// @description     API for processing and managing card payments through the Payment Gateway.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
