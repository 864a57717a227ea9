package main

import "github.com/Tyler-Odenthal/Tyler-Odenthal/cmd"

func main() {
	cmd.Execute()
}
