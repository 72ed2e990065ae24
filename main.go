package main

import (
	"log"

	"LocalPaint/internal/ui"
)

func main() {
	log.Println("Starting LocalPaint")
	ui.RunApp()
}
