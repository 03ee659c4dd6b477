package main

import "github.com/steelchord/steelchord/cmd"

func main() {
	cmd.Execute()
}
