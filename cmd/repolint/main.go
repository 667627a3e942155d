package main

import "github.com/jekwwer/repolint/internal/cli"

func main() {
	cli.Execute()
}
