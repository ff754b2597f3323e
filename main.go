package main

import "github.com/Bridgeless-Project/tvm-bridge/cmd"

func main() {
	cmd.Execute()
}
