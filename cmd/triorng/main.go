// cmd/triorng/main.go
package main

import (
	"triorng/internal/app"
	"triorng/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
