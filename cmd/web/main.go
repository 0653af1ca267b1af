package main

import "nexivo_backend/internal/app"

func main() {
	app.Run()
}
