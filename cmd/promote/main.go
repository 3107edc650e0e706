// Command promote grants the admin role to a profile by email address.
// It is used to bootstrap the first admin.
//
// Usage:
//
//	promote --email=user@example.com
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres/profile"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the profile to promote to admin")
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

	changed, err := profile.New(pool).SetRoleByEmail(ctx, *email, domain.UserRoleAdmin)
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	if !changed {
		fmt.Printf("No profile found with email %q, or already admin.\n", *email)
		os.Exit(1)
	}

	fmt.Printf("Profile %q promoted to admin.\n", *email)
}
