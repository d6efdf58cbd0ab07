package main

import "github.com/dkovalev/fittrack/cmd"

func main() {
	cmd.Execute()
}
