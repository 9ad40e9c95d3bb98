package main

import (
	"log"

	"github.com/brendoncarroll/nbtkit/pkg/nbtcmd"
)

func main() {
	if err := nbtcmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
