package main

import "os-simulator/cmd"

func main() {
	cmd.Execute()
}
