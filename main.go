package main

import "github.com/jsphweid/tertian/cmd"

func main() {
	cmd.Execute()
}
