package main

import (
	"log"

	"github.com/gtnh/gtpower/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
