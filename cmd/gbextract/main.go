// cmd/gbextract/main.go
package main

import (
	"gbextract/internal/app"
	"gbextract/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
