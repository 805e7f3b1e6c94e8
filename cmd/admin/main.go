package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/ahpc/backend/internal/config"
	"github.com/ahpc/backend/internal/logging"
	"github.com/ahpc/backend/internal/model"
	"github.com/ahpc/backend/internal/repository"
	"github.com/ahpc/backend/internal/service"
	"golang.org/x/term"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

// accountManager は管理者アカウント操作（service.AuthService が満たす）
type accountManager interface {
	CreateAdmin(ctx context.Context, email, name, password string) (*model.User, error)
	ResetPassword(ctx context.Context, email, password string) error
}

type commandLine struct {
	accounts accountManager
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  adduser -email EMAIL [-name NAME]   - create an admin account")
	fmt.Fprintln(cli.out, "  resetpassword -email EMAIL          - reset an admin's password")
	fmt.Fprintln(cli.out, "The password is prompted next.")
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserCmd.SetOutput(cli.out)
	addUserEmail := addUserCmd.String("email", "", "The admin's email.")
	addUserName := addUserCmd.String("name", "", "The admin's display name.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetPasswordCmd.SetOutput(cli.out)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The admin's email.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserEmail == "" {
			addUserCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		u, err := cli.accounts.CreateAdmin(ctx, *addUserEmail, *addUserName, pwd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "created admin %s (%s)\n", u.Email, u.ID)
		return nil
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if err := cli.accounts.ResetPassword(ctx, *resetPasswordEmail, pwd); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, "password updated")
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func main() {
	cfg := config.Load()
	logging.Setup(cfg.SentryDSN)
	defer logging.Flush()

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	cli := &commandLine{
		accounts: service.NewAuthService(repository.NewPgUserRepository(pool), repository.NewPgSessionRepository(pool)),
		out:      os.Stdout,
	}
	if err := cli.run(ctx, os.Args); err != nil {
		if errors.Is(err, errHelp) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logging.Fatal("command failed", "error", err)
	}
}
