package cli

import (
	"context"
	"fmt"
)

func (a *App) Login(ctx context.Context) error {
	if !a.session.Login() {
		fmt.Fprintln(a.out, "Already logged in")
		return nil
	}
	a.log.Info(ctx, "session started")
	fmt.Fprintln(a.out, "Welcome to your vault")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.session.Logout() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	a.log.Info(ctx, "session ended")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
