// Command createuser creates a login, or resets the password of an
// existing one.
//
//	createuser -username lucia -email lucia@example.com
//
// Without -password the password is read twice from stdin.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	ucUser "github.com/BruksfildServices01/salon-scheduler/internal/usecase/user"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

func main() {
	username := flag.String("username", "", "login name (required)")
	email := flag.String("email", "", "e-mail address")
	password := flag.String("password", "", "password; prompted when empty")
	staff := flag.Bool("staff", false, "create a staff login instead of a client")
	checkEmail := flag.Bool("check-email", true, "verify the e-mail domain resolves")
	flag.Parse()

	if *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*username, *email, *password, *staff, *checkEmail); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(username, email, password string, staff, checkEmail bool) error {
	if password == "" {
		var err error
		if password, err = promptPassword(os.Stdin, os.Stdout); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	var emailOK func(string) bool
	if checkEmail {
		emailOK = validators.IsEmailDomainValid
	}

	uc := ucUser.NewUpsertUser(repository.NewUserGormRepository(db), emailOK)
	res, err := uc.Execute(context.Background(), ucUser.UpsertUserInput{
		Username: username,
		Email:    email,
		Password: password,
		Staff:    staff,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			_, message := httperr.Describe(be.Code)
			return errors.New(message)
		}
		return err
	}

	if res.Created {
		fmt.Printf("Usuario creado: %s\n", res.User.Username)
	} else {
		fmt.Printf("Usuario actualizado: %s\n", res.User.Username)
	}
	return nil
}

func promptPassword(in io.Reader, out io.Writer) (string, error) {
	sc := bufio.NewScanner(in)
	read := func(label string) (string, error) {
		fmt.Fprint(out, label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimRight(sc.Text(), "\r"), nil
	}

	for {
		first, err := read("Contraseña: ")
		if err != nil {
			return "", err
		}
		second, err := read("Repite la contraseña: ")
		if err != nil {
			return "", err
		}
		if first == second {
			return first, nil
		}
		fmt.Fprintln(out, "Las contraseñas no coinciden.")
	}
}
