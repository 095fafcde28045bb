package main

import "comictrack/internal/app"

func main() {
	app.Run()
}
