package main

import "github.com/printhaus/go-shop-finance/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
