package main

import (
	"context"
	"os"

	"github.com/Amey2003/excel-issue-tracker/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
