package main

import (
	"github.com/onebengaltiger/obtutils/cmd"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sijms/go-ora/v2"
)

func main() {
	cmd.Execute()
}
