package main

import "github.com/iamNilotpal/romsum/cmd/romsum/cmd"

func main() {
	cmd.Execute()
}
