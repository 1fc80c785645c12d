package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for a display name, email and password, creates the account
// and keeps the returned session token.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Choose a password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	token, err := a.client.Signup(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	a.setSession(email, token)
	fmt.Fprintln(a.out, "Account created.")
	fmt.Fprintln(a.out, "Token:", token)
	return nil
}

// Login prompts for credentials and keeps the returned session token.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.setSession(email, token)
	fmt.Fprintln(a.out, "Logged in.")
	fmt.Fprintln(a.out, "Token:", token)
	return nil
}

// Logout forgets the session token locally. Tokens are stateless, so nothing
// is sent to the server.
func (a *App) Logout(_ context.Context) error {
	a.setSession("", "")
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) setSession(email, token string) {
	a.email = email
	a.token = token
	a.client.SetToken(token)
}
