package main

import "github.com/listoapp/listo/internal/cli"

func main() {
	cli.Execute()
}
