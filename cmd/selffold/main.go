// cmd/selffold/main.go
package main

import (
	"selffold/internal/appshell"
	"selffold/internal/foldapp"
)

func main() {
	appshell.Main(foldapp.RunContext)
}
