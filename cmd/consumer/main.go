package main

import "github.com/printhaus/go-shop-finance/cmd/consumer/cmd"

func main() {
	cmd.Execute()
}
