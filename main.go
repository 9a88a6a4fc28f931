// @title Talent Bridge API
// @version 1.0
// @description Screening backend for twice-exceptional students: questionnaires, assessment flow, scoring and survey storage proxy.

// @host localhost:8080
// @BasePath /api

package main

import (
	"fmt"
	"os"

	"talent_bridge_backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
