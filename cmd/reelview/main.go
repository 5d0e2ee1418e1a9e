package main

import "reelview/internal/cmd"

func main() {
	cmd.Run()
}
