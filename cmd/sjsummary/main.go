// cmd/sjsummary/main.go
package main

import (
	"crypticsj/internal/appshell"
	"crypticsj/internal/summaryapp"
)

func main() {
	appshell.Main(summaryapp.RunContext)
}
