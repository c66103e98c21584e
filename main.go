package main

import "github.com/Rorical/RoriCalc/cmd"

func main() {
	cmd.Execute()
}
