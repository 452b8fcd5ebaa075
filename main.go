package main

import "github.com/alexiusacademia/gogyro/cmd"

func main() {
	cmd.Execute()
}
