package main

import "github.com/MeKo-Tech/noiseplane/internal/cmd"

func main() {
	cmd.Execute()
}
