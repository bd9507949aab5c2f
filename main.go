package main

import "github.com/Lalitdesh1/BurnFit/cmd/burnfit"

func main() {
	burnfit.Execute()
}
