package main

import (
	"github.com/feltvm/go-feltvm/pkg/cmd"
)

func main() {
	cmd.Execute()
}
