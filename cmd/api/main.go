package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title Document Tracking API
// @version 1.0
// @description Registration, review and reporting of branch correspondence.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
