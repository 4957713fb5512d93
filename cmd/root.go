package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite"

	"github.com/onebengaltiger/obtutils/internal/codegen"
	"github.com/onebengaltiger/obtutils/internal/dialect"
	"github.com/onebengaltiger/obtutils/internal/engine"
	"github.com/onebengaltiger/obtutils/internal/notify"
	"github.com/onebengaltiger/obtutils/internal/schema"
	"github.com/onebengaltiger/obtutils/internal/verify"
)

const banner = "Console SQL code generator for multiple providers"

var (
	cfgFile     string
	provider    string
	dsn         string
	schemaName  string
	dialectName string
	layoutName  string
	compact     bool
	sample      bool
	check       bool
)

var RootCmd = &cobra.Command{
	Use:   "obt-sqlgen <providerName> <connectionString> <tableName> <select|insert|update|delete|all>",
	Short: "Generate CRUD stored procedures from a live table",
	Long: `
   ___  ____ _____   ____   ___  _     ____ _____ _   _
  / _ \| __ )_   _| / ___| / _ \| |   / ___| ____| \ | |
 | | | |  _ \ | |   \___ \| | | | |  | |  _|  _| |  \| |
 | |_| | |_) || |    ___) | |_| | |__| |_| | |___| |\  |
  \___/|____/ |_|   |____/ \__\_\_____\____|_____|_| \_|

Console SQL code generator for multiple providers.

The provider picks the dialect: names containing "npgsql" give PostgreSQL
functions, "mysql" MySQL procedures, "sqlclient" T-SQL procedures, and
anything else the generic T-SQL-like form.

With two arguments (<tableName> <petition>) the provider and connection
string come from --provider/--dsn or the active database in obt-sqlgen.yaml.
`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./obt-sqlgen.yaml)")
	RootCmd.PersistentFlags().StringVar(&provider, "provider", "", "provider name (Npgsql, MySql.Data.MySqlClient, System.Data.SqlClient, or a Go driver name)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "connection string")
	RootCmd.PersistentFlags().StringVar(&schemaName, "schema", "", "schema used when listing tables")
	RootCmd.PersistentFlags().StringVar(&dialectName, "dialect", "", "override the dialect (generic, sqlserver, mysql, postgresql)")
	RootCmd.PersistentFlags().StringVar(&layoutName, "layout", "verbose", "statement layout (verbose, compact)")
	RootCmd.PersistentFlags().BoolVar(&compact, "compact", false, "shorthand for --layout compact")

	RootCmd.Flags().BoolVar(&sample, "sample", false, "append an example invocation with fake arguments")
	RootCmd.Flags().BoolVar(&check, "check", false, "parse the generated DML and report statements that do not compile")
	RootCmd.Flags().Int64("seed", 0, "seed for --sample values (0 is random)")

	viper.BindPFlag("database.provider", RootCmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("database.schema", RootCmd.PersistentFlags().Lookup("schema"))
	viper.BindPFlag("settings.seed", RootCmd.Flags().Lookup("seed"))
	viper.BindPFlag("settings.layout", RootCmd.PersistentFlags().Lookup("layout"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Executable directory first, then the working directory.
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		viper.AddConfigPath(".")

		viper.SetConfigName("obt-sqlgen")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// stdout carries the generated SQL, so report on stderr.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var (
		conn            *DBConfig
		table, petition string
	)
	switch len(args) {
	case 4:
		conn = &DBConfig{
			Name:     "command line",
			Provider: args[0],
			DSN:      args[1],
			Schema:   viper.GetString("database.schema"),
			Active:   true,
		}
		table, petition = args[2], args[3]
	case 2:
		table, petition = args[0], args[1]
	default:
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return fmt.Errorf("wrong number of arguments: expected 4 (or 2 with a configured database), got %d", len(args))
	}

	fmt.Fprintln(cmd.ErrOrStderr(), banner)

	if !codegen.ValidPetition(petition) {
		fmt.Fprintln(cmd.OutOrStdout(), codegen.UnknownPetition(petition))
		return nil
	}

	if conn == nil {
		var err error
		if conn, err = resolveConnection(); err != nil {
			return err
		}
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

	n := newNotifier(cmd)
	in := &schema.SQLIntrospector{DB: db, Driver: driver, Schema: conn.Schema}
	gen, err := newGenerator(conn.Provider, in, n)
	if err != nil {
		return err
	}

	out, t, err := gen.PetitionTable(ctx, petition, table)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	d := gen.Dialect()
	if sample {
		s := engine.NewSampler(viper.GetInt64("settings.seed"))
		for _, kind := range codegen.Kinds(petition) {
			fmt.Fprintln(cmd.OutOrStdout(), "-- example: "+s.Invocation(d, kind, t))
		}
	}

	if check {
		wanted := map[dialect.Kind]bool{}
		for _, kind := range codegen.Kinds(petition) {
			wanted[kind] = true
		}
		for _, cerr := range verify.NewChecker().Table(gen.Template(), t) {
			if wanted[cerr.Kind] {
				n.Notify("check: " + cerr.Error())
			}
		}
	}

	return nil
}

func newNotifier(cmd *cobra.Command) notify.Notifier {
	return notify.FromLogger(log.New(cmd.ErrOrStderr(), "[obt-sqlgen] ", log.LstdFlags))
}

// newGenerator builds the generator for a provider. --dialect overrides
// the dialect the provider name selects; --layout or --compact pick the
// statement layout.
func newGenerator(providerName string, in schema.Introspector, n notify.Notifier) (*codegen.Generator, error) {
	opts := dialect.Options{Notifier: n}

	layout, ok := dialect.ParseLayout(viper.GetString("settings.layout"))
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (want verbose or compact)", viper.GetString("settings.layout"))
	}
	opts.Layout = layout
	if compact {
		opts.Layout = dialect.LayoutCompact
	}

	if dialectName == "" {
		return codegen.New(providerName, in, opts), nil
	}
	d, err := dialect.Parse(dialectName)
	if err != nil {
		return nil, err
	}
	return codegen.NewForDialect(d, in, opts), nil
}

// openDB connects with the driver registered for the provider. Failures
// are reported as introspection errors.
func openDB(ctx context.Context, conn *DBConfig) (*sql.DB, string, error) {
	driver := schema.DriverFor(conn.Provider)

	db, err := sql.Open(driver, conn.DSN)
	if err != nil {
		return nil, "", &schema.IntrospectionError{Err: fmt.Errorf("failed to open db: %w", err)}
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", &schema.IntrospectionError{Err: fmt.Errorf("failed to connect to db: %w", err)}
	}

	return db, driver, nil
}
