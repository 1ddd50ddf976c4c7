// Command bakeryctl runs admin tasks against the bakery database.
//
//	bakeryctl revenue -month 2025-03
//	bakeryctl hash-password -password s3cret
//	bakeryctl refresh-customers
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	_ "time/tzdata"

	"bakery/cmd"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/redis"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/pkg/auth"

	"github.com/labstack/gommon/log"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "revenue":
		err = runRevenue(os.Args[2:])
	case "hash-password":
		err = runHashPassword(os.Args[2:], os.Stdin, os.Stdout)
	case "refresh-customers":
		err = runRefreshCustomers()
	case "-h", "--help", "help":
		usage(os.Stdout)
		return
	default:
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: bakeryctl <revenue|hash-password|refresh-customers> [flags]")
}

func runRevenue(args []string) error {
	fs := flag.NewFlagSet("revenue", flag.ContinueOnError)
	month := fs.String("month", "", "report month in YYYY-MM format")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query, err := queries.NewGetRevenueQueryForMonth(*month)
	if err != nil {
		return err
	}

	root, closeDB, err := openRoot()
	if err != nil {
		return err
	}
	defer closeDB()

	report, err := root.CreateGetRevenueQueryHandler().Handle(context.Background(), query)
	if err != nil {
		return err
	}
	return renderRevenue(os.Stdout, report)
}

func runHashPassword(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("hash-password", flag.ContinueOnError)
	password := fs.String("password", "", "password to hash; read from stdin when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "" {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		*password = strings.TrimRight(line, "\r\n")
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hash)
	return err
}

func runRefreshCustomers() error {
	root, closeDB, err := openRoot()
	if err != nil {
		return err
	}
	defer closeDB()

	handler := root.CreateRefreshCustomersCommandHandler()
	count, err := handler.Handle(context.Background(), commands.NewRefreshCustomersCommand())
	if err != nil {
		return err
	}
	fmt.Printf("%d customers refreshed\n", count)
	return nil
}

func openRoot() (cmd.CompositionRoot, func(), error) {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return cmd.CompositionRoot{}, nil, err
	}
	location, err := configs.Location()
	if err != nil {
		return cmd.CompositionRoot{}, nil, err
	}

	db, err := postgres.Open(configs.Database())
	if err != nil {
		return cmd.CompositionRoot{}, nil, err
	}
	if err = postgres.Migrate(db); err != nil {
		return cmd.CompositionRoot{}, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	root := cmd.NewCompositionRoot(db, redis.NoopCheckoutGuard{}, noopNotifier{}, location, logger)
	closeDB := func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}
	return root, closeDB, nil
}
