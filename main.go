package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/etapa/cmd"
	"github.com/thenoetrevino/etapa/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())
	if err == nil {
		return
	}

	var exitErr *cli.CommandError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(cli.ExitError)
}
