package main

import "fedcompare-go/internal/cli"

func main() {
	cli.Execute()
}
