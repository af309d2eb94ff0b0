package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stefa-ie/buecheria-library-app/config"
	"github.com/stefa-ie/buecheria-library-app/model"
	userrepo "github.com/stefa-ie/buecheria-library-app/repository/user"
	authsvc "github.com/stefa-ie/buecheria-library-app/service/auth"
	"github.com/stefa-ie/buecheria-library-app/util/database"
)

var (
	userRole          string
	userPasswordStdin bool
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage login accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create USERNAME",
	Short: "Create a login account",
	Long: `Create a login account. The password is read from the terminal without
echo, or from the first line of stdin with --password-stdin.

Examples:
  buecheria user create admin --role admin
  echo "$PW" | buecheria user create alice --password-stdin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), userPasswordStdin)
		if err != nil {
			return err
		}
		return withDB(cmd.Context(), func(ctx context.Context, db *database.DB) error {
			cfg := config.Load()
			svc := authsvc.New(db, userrepo.New(), cfg.JWTSecret, cfg.TokenTTL)
			u, err := svc.CreateUser(ctx, model.CreateUserReq{
				Username: args[0],
				Password: pw,
				Role:     model.Role(userRole),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id %d, role %s)\n", u.Username, u.ID, u.Role)
			return nil
		})
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userRole, "role", string(model.RoleUser), "account role: user or admin")
	userCreateCmd.Flags().BoolVar(&userPasswordStdin, "password-stdin", false, "read the password from stdin")
	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}

func readPassword(in io.Reader, prompt io.Writer, fromStdin bool) (string, error) {
	if !fromStdin {
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fmt.Fprint(prompt, "Password: ")
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(prompt)
			if err != nil {
				return "", err
			}
			return string(b), nil
		}
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
