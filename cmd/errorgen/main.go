package main

import (
	"log"

	"github.com/printhaus/go-shop-finance/internal/common/codegen/errorgen"
)

var (
	fileLocation = "./storages/errors-map.csv"
	outputFile   = "./internal/models/error_map.go"
)

func main() {
	if err := errorgen.GenerateErrorMapFromCSV(fileLocation, outputFile); err != nil {
		log.Fatal(err)
	}
	log.Printf("written %s", outputFile)
}
