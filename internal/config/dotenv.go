package config

import (
	"log"
	"sync"

	"github.com/joho/godotenv"
)

var dotEnvOnce sync.Once

// loadDotEnv loads the .env file once per process. Missing files are fine;
// real environments set variables directly.
func loadDotEnv() {
	dotEnvOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found")
		}
	})
}
