package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"loft442-server/di"
)

func main() {
	godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	container := di.NewContainer(env)

	fmt.Println("starting server!")
	container.LoftHttpServer.Start()
}
