// Package main starts the pet-savings command line.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-savings/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal().Err(err).Msg("pet-savings")
	}
}
