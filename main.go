package main

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/will-rowe/dbgasm/cmd"
)

func main() {
	cmd.Execute()
}
