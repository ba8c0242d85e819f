// Command console is an interactive terminal client for the user directory
// API: it lists records and drives the create/update/delete flows through
// the console.App state container.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/userhub/user-service/internal/console"
	"github.com/userhub/user-service/internal/users"
	"github.com/userhub/user-service/pkg/client"
)

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	api := client.New(baseURL)
	app := console.NewApp(api)
	in := bufio.NewScanner(os.Stdin)

	ctx := context.Background()
	fmt.Printf("User Directory — %s\n", baseURL)
	fmt.Println("Loading users...")
	if err := app.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "cannot reach the API: %v\n", err)
		os.Exit(1)
	}

	for {
		render(app)
		switch v := app.View().(type) {
		case console.Viewing:
			if !commandPrompt(ctx, app, in) {
				return
			}
		case console.Creating:
			form, ok := formPrompt(in, nil)
			if !ok {
				app.Cancel()
				continue
			}
			_ = app.SubmitCreate(ctx, form)
		case console.Updating:
			form, ok := formPrompt(in, &v.Selected)
			if !ok {
				app.Cancel()
				continue
			}
			_ = app.SubmitUpdate(ctx, form)
		}
	}
}

func render(app *console.App) {
	fmt.Println()
	if n := app.Notice(); n != nil {
		fmt.Printf("[%s] %s\n", n.Kind, n.Text)
	}
	switch v := app.View().(type) {
	case console.Viewing:
		list := app.Users()
		if len(list) == 0 {
			fmt.Println("No users found. Get started by creating your first user!")
			return
		}
		fmt.Printf("%d user(s):\n", len(list))
		for i, u := range list {
			fmt.Printf("  %2d. %-20s %-15s %s (%s)\n", i+1, u.Name, u.PhoneNumber, u.CompanyName, u.Address)
			fmt.Printf("      created %s", u.CreatedAt.Format(time.RFC822))
			if !u.UpdatedAt.Equal(u.CreatedAt) {
				fmt.Printf(", updated %s", u.UpdatedAt.Format(time.RFC822))
			}
			fmt.Println()
		}
	case console.Creating:
		fmt.Println("-- Create New User -- (empty line cancels)")
	case console.Updating:
		fmt.Printf("-- Update User: %s -- (empty line keeps the current value)\n", v.Selected.Name)
	}
}

func commandPrompt(ctx context.Context, app *console.App, in *bufio.Scanner) bool {
	fmt.Print("\ncommands: list | new | edit <n> | delete <n> | quit\n> ")
	if !in.Scan() {
		return false
	}
	fields := strings.Fields(in.Text())
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "quit", "q", "exit":
		return false
	case "list", "l":
		_ = app.Load(ctx)
	case "new", "n":
		app.StartCreate()
	case "edit", "e":
		if u, ok := pick(app, fields); ok {
			app.StartEdit(u.ID)
		}
	case "delete", "d":
		if u, ok := pick(app, fields); ok {
			fmt.Printf("Delete %s? This action cannot be undone. [y/N] ", u.Name)
			if in.Scan() && strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
				_ = app.Delete(ctx, u.ID)
			}
		}
	default:
		fmt.Printf("unknown command %q\n", fields[0])
	}
	return true
}

// pick resolves a 1-based list index argument to a user.
func pick(app *console.App, fields []string) (client.User, bool) {
	if len(fields) < 2 {
		fmt.Println("usage:", fields[0], "<n>")
		return client.User{}, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 || n > len(app.Users()) {
		fmt.Printf("no such entry: %s\n", fields[1])
		return client.User{}, false
	}
	return app.Users()[n-1], true
}

// formPrompt collects the four business fields. When editing, current holds
// the selected record and empty answers keep its values. Returns ok=false
// when the user cancels an empty create form.
func formPrompt(in *bufio.Scanner, current *client.User) (users.Input, bool) {
	ask := func(label, existing string) string {
		if existing != "" {
			fmt.Printf("%s [%s]: ", label, existing)
		} else {
			fmt.Printf("%s: ", label)
		}
		if !in.Scan() {
			return existing
		}
		v := strings.TrimSpace(in.Text())
		if v == "" {
			return existing
		}
		return v
	}

	var form users.Input
	if current != nil {
		form = users.Input{
			Name:        ask("Full Name", current.Name),
			Address:     ask("Address", current.Address),
			PhoneNumber: ask("Phone Number (10 digits)", current.PhoneNumber),
			CompanyName: ask("Company Name", current.CompanyName),
		}
	} else {
		form = users.Input{
			Name:        ask("Full Name", ""),
			Address:     ask("Address", ""),
			PhoneNumber: ask("Phone Number (10 digits)", ""),
			CompanyName: ask("Company Name", ""),
		}
		if form == (users.Input{}) {
			return form, false
		}
	}
	return form, true
}
