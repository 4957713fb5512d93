package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/onebengaltiger/obtutils/internal/schema"
)

var showColumns bool

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables of the configured database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		in := &schema.SQLIntrospector{DB: db, Driver: driver, Schema: conn.Schema}
		names, err := in.Tables(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !showColumns {
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		gen, err := newGenerator(conn.Provider, in, newNotifier(cmd))
		if err != nil {
			return err
		}
		tpl := gen.Template()
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, name := range names {
			t, err := gen.Describe(ctx, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t\t\t\n", t.Name)
			for _, col := range t.Columns {
				fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", col.Name, col.NativeType, col.Type, tpl.MapType(col))
			}
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(tablesCmd)

	tablesCmd.Flags().BoolVarP(&showColumns, "columns", "c", false, "show each column with its native, abstract and mapped type")
}
