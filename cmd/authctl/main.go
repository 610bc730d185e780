// Command authctl is a small CLI around the auth provider: it signs users up
// and in against a backend auth API and keeps the access token in a file
// store under the user's config directory.
//
// Configuration comes from the environment (a .env file is honored):
//
//	AUTH_HOST        backend host (required)
//	AUTH_PORT        backend port (optional)
//	AUTH_PROTOCOL    http or https (default https)
//	AUTH_API_VERSION API version segment (default v1)
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	authprovider "github.com/j-u-p-iter/auth-provider"
	fsstore "github.com/j-u-p-iter/auth-provider/stores/fs"
)

const usage = `usage: authctl <command> [flags]

commands:
  sign-up   -username <name> -email <addr> -password <pw>
  sign-in   -email <addr> -password <pw>
  sign-out
  whoami
  token
`

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:], logger); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run(command string, args []string, logger zerolog.Logger) error {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	provider, err := newProvider(logger)
	if err != nil {
		return err
	}

	switch command {
	case "sign-up":
		fs := flag.NewFlagSet("sign-up", flag.ExitOnError)
		username := fs.String("username", "", "username for the new account")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(args)

		user, err := provider.SignUp(authprovider.Credentials{
			Username: *username,
			Email:    *email,
			Password: *password,
		})
		if err != nil {
			return err
		}
		return printJSON(user)

	case "sign-in":
		fs := flag.NewFlagSet("sign-in", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(args)

		user, err := provider.SignIn(authprovider.Credentials{
			Email:    *email,
			Password: *password,
		})
		if err != nil {
			return err
		}
		return printJSON(user)

	case "sign-out":
		if err := provider.SignOut(); err != nil {
			return err
		}
		logger.Info().Msg("signed out")
		return nil

	case "whoami":
		user, err := provider.CurrentUser()
		if err != nil {
			// The backend may be unreachable; fall back to the token's own
			// claims when it is a JWT.
			if claims, claimsErr := provider.Claims(); claimsErr == nil {
				logger.Warn().Err(err).Msg("backend unreachable, showing token claims")
				return printJSON(claims)
			}
			return err
		}
		if user == nil {
			fmt.Println("not signed in")
			return nil
		}
		return printJSON(user)

	case "token":
		token, err := provider.AccessToken()
		if err != nil {
			return err
		}
		if token == "" {
			fmt.Println("not signed in")
			return nil
		}
		fmt.Println(token)
		if claims, err := provider.Claims(); err == nil {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				fmt.Printf("expires: %s\n", exp.Format(time.RFC3339))
			}
		}
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func newProvider(logger zerolog.Logger) (*authprovider.Provider, error) {
	host := os.Getenv("AUTH_HOST")
	if host == "" {
		return nil, fmt.Errorf("AUTH_HOST is required")
	}

	port := 0
	if v := os.Getenv("AUTH_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_PORT %q: %w", v, err)
		}
		port = p
	}

	store, err := fsstore.NewTokenStore("", "authctl")
	if err != nil {
		return nil, err
	}

	return authprovider.New(authprovider.Config{
		Host:       host,
		Port:       port,
		Protocol:   os.Getenv("AUTH_PROTOCOL"),
		APIVersion: os.Getenv("AUTH_API_VERSION"),
	},
		authprovider.WithTokenStore(store),
		authprovider.WithLogger(logger),
	)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
