package main

import "trending-videos/interfaces/cli"

func main() {
	cli.Execute()
}
