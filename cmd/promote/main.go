// Command promote sets an account's role to admin by email address.
// It is used to bootstrap the first moderator.
//
// Usage:
//
//	promote --email=user@example.com
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of account to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	acc, err := account.New(pool).SetRole(ctx, *email, domain.RoleAdmin)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No account found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("Account %q (%s) promoted to admin.\n", *email, acc.ID)
}
