package main

import "github.com/gtnh/gtpower/pkg/cli"

func main() {
	cli.Execute()
}
