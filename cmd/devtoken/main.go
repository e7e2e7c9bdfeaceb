// Command devtoken mints bearer tokens accepted by the API in hmac auth mode.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"creatorhub/config"
	"creatorhub/internal/domain/service"
	"creatorhub/internal/infra/auth"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

func main() {
	subject := flag.String("sub", "", "Subject, used as the user id (required)")
	email := flag.String("email", "", "Email claim")
	name := flag.String("name", "", "Name claim")
	picture := flag.String("picture", "", "Avatar URL claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	if err := run(&service.Identity{Subject: *subject, Email: *email, Name: *name, Picture: *picture}, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(identity *service.Identity, ttl time.Duration) error {
	if identity.Subject == "" {
		return errors.New("-sub is required")
	}

	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	issuer, err := auth.NewTokenIssuer(cfg)
	if err != nil {
		return err
	}

	token, err := issuer.Issue(identity, ttl)
	if err != nil {
		return errors.Wrap(err, "issue token")
	}

	fmt.Println(token)

	return nil
}
