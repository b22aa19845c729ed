package main

import "github.com/frahmantamala/tracko/cmd"

func main() {
	cmd.Execute()
}
