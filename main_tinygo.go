//go:build tinygo

package main

import (
	"splitkb/app"
	"splitkb/hal"
)

func main() {
	app.Run(hal.New())
}
