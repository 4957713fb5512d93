package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onebengaltiger/obtutils/internal/pojo"
	"github.com/onebengaltiger/obtutils/internal/schema"
)

var javaPackage string

var pojoCmd = &cobra.Command{
	Use:   "pojo <tableName> [none|ormlite]",
	Short: "Print a Java POJO for a table",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager := pojo.None
		if len(args) == 2 {
			m, err := pojo.ParseManager(args[1])
			if err != nil {
				return err
			}
			manager = m
		}

		conn, err := resolveConnection()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		db, driver, err := openDB(ctx, conn)
		if err != nil {
			return err
		}
		defer db.Close()

		t, err := schema.Describe(ctx, &schema.SQLIntrospector{DB: db, Driver: driver, Schema: conn.Schema}, args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), pojo.Generate(t, pojo.Options{
			Manager:  manager,
			Package:  javaPackage,
			Notifier: newNotifier(cmd),
		}))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pojoCmd)

	pojoCmd.Flags().StringVar(&javaPackage, "package", "", "Java package declared at the top of the class")
}
