package main

import (
	"errors"

	"github.com/spf13/cobra"

	echoapi "github.com/umairnumplate/noor-ul-masajid/apps/api/echo"
)

var errNotSQL = errors.New("migrations only apply to the sqlite and postgres engines")

type migrator interface {
	Migrate(command string, args ...string) error
}

func (cli *commandLine) tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for the local API",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			conf := cli.svc.Config
			token, err := echoapi.GenerateToken(echoapi.GetOperatorClaims(conf), conf.SecretKey)
			if err != nil {
				return err
			}
			cli.println(token)
			return nil
		},
	}
}

func (cli *commandLine) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate COMMAND [ARGS...]",
		Short: "Run a schema migration command (up, down, status, version, redo...)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, ok := cli.svc.DB.Store().(migrator)
			if !ok {
				return errNotSQL
			}
			return m.Migrate(args[0], args[1:]...)
		},
	}
}
