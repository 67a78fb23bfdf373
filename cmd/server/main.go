package main

import "github.com/ndewijer/TradeLog-Backend/internal/cli"

func main() {
	cli.Execute()
}
