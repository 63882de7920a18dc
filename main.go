package main

import (
	"Gaadi/FiberConfig"
	"Gaadi/Models"
)

func main() {
	Models.Connect()
	FiberConfig.FiberConfig()
}
