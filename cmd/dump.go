package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/onebengaltiger/obtutils/internal/codegen"
	"github.com/onebengaltiger/obtutils/internal/schema"
)

var dumpTables []string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the four routines of every table to <table>.sql files",
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

		// Flag > config settings.tables > every table.
		targets := dumpTables
		if len(targets) == 0 {
			targets = viper.GetStringSlice("settings.tables")
		}
		if len(targets) == 0 {
			if targets, err = in.Tables(ctx); err != nil {
				return err
			}
		}
		if len(targets) == 0 {
			return fmt.Errorf("no tables to dump")
		}

		outDir := viper.GetString("settings.output_dir")
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		gen, err := newGenerator(conn.Provider, in, newNotifier(cmd))
		if err != nil {
			return err
		}
		log.Printf("Dumping %d tables as %s to %s", len(targets), gen.Dialect(), outDir)
		start := time.Now()

		progress := uiprogress.New()
		progress.Out = cmd.ErrOrStderr()
		progress.Start()
		bar := progress.AddBar(len(targets)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Generating: "
		})

		written, err := dumpAll(ctx, gen, targets, outDir, viper.GetInt("settings.concurrency"), func() {
			bar.Incr()
		})

		progress.Stop()

		if err != nil {
			return err
		}

		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		log.Printf("Dump done! %d files in %s", len(written), time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringP("out", "o", ".", "directory the .sql files are written to")
	dumpCmd.Flags().StringSliceVarP(&dumpTables, "tables", "t", []string{}, "specific tables to dump (comma-separated)")
	dumpCmd.Flags().Int("concurrency", 4, "tables generated in parallel")

	viper.BindPFlag("settings.output_dir", dumpCmd.Flags().Lookup("out"))
	viper.BindPFlag("settings.concurrency", dumpCmd.Flags().Lookup("concurrency"))
	viper.SetDefault("settings.output_dir", ".")
	viper.SetDefault("settings.concurrency", 4)
}

// dumpAll writes one file per table, at most limit tables at a time. The
// returned paths follow the order of tables.
func dumpAll(ctx context.Context, gen *codegen.Generator, tables []string, dir string, limit int, onDone func()) ([]string, error) {
	if limit < 1 {
		limit = 1
	}

	paths := make([]string, len(tables))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, name := range tables {
		g.Go(func() error {
			sql, err := gen.GenerateAll(ctx, name)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, fileName(name)+".sql")
			if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			paths[i] = path
			if onDone != nil {
				onDone()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// fileName keeps qualified names such as dbo.Customer usable as file names.
func fileName(table string) string {
	return strings.NewReplacer("/", "_", `\`, "_", " ", "_").Replace(table)
}
