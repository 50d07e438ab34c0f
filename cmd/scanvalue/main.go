package main

import "github.com/rawbytedev/scanvalue/internal/cli"

func main() {
	cli.Execute()
}
