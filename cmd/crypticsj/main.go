// cmd/crypticsj/main.go
package main

import (
	"crypticsj/internal/app"
	"crypticsj/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
