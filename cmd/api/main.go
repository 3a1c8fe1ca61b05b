package main

import (
	"log"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/cmd"
)

func main() {
	apiHandler, config, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(config.Port)
	if err != nil {
		log.Fatal(err)
	}
}
