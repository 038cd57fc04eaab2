package main

import (
	"fmt"
	"log"
	"os"

	"github.com/umairnumplate/noor-ul-masajid/apps/di"
	"github.com/umairnumplate/noor-ul-masajid/core"
)

func main() {
	c := di.New(core.NewConfig)

	var runErr error
	if err := c.Invoke(func(s di.Services) {
		defer func() {
			if err := s.DB.Close(); err != nil {
				s.Logger.Error("closing store", err)
			}
		}()

		cli := newCommandLine(s, os.Stdin, os.Stdout)
		runErr = cli.run(os.Args[1:])
	}); err != nil {
		log.Fatal(err)
	}

	if runErr != nil {
		if runErr != errHelp {
			fmt.Fprintf(os.Stderr, "error: %s\n", runErr)
		}
		os.Exit(1)
	}
}
