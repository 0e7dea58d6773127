package main

import "github.com/techsoft3d/visualize-components/cmd"

func main() {
	cmd.Execute()
}
