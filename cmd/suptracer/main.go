package main

import "github.com/arl/go-suptracer/cmd/suptracer/cmd"

func main() {
	cmd.Execute()
}
