package cli

import (
	"context"
	"fmt"
	"os"

	"mockadmin/internal/models"
	"mockadmin/internal/query"
	"mockadmin/internal/services"
)

// Users lists the user collection, optionally filtered by a search term.
func (a *App) Users(ctx context.Context) error {
	search, err := GetSimpleText(a.reader, "Search (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.users.List(ctx, services.ListUsersParams{
		Params: query.Params{Search: search, OrderBy: "username"},
	})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	for _, u := range res.Data {
		status := "active"
		if !u.Active {
			status = "inactive"
		}
		printlnFn(fmt.Sprintf("%4d  %-20s %-8s %s", u.ID, u.Username, status, u.CreatedAt.Format("2006-01-02 15:04")))
	}
	printlnFn(fmt.Sprintf("page %d/%d, %d total", res.Page, res.TotalPages, res.Total))
	return nil
}

// UserAdd prompts for credentials and creates a user.
func (a *App) UserAdd(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "New username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.users.Create(ctx, models.UserCreate{Username: username, Password: string(password)})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Created user", user.ID)
	return nil
}

// UserUpdate renames an existing user.
func (a *App) UserUpdate(ctx context.Context) error {
	id, err := GetID(a.reader, "User id", os.Stdout)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	username, err := GetSimpleText(a.reader, "New username", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.users.Update(ctx, id, models.UserPatch{Username: &username})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Updated user", user.ID)
	return nil
}

// UserToggle flips a user's active flag.
func (a *App) UserToggle(ctx context.Context) error {
	id, err := GetID(a.reader, "User id", os.Stdout)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	user, err := a.users.ToggleStatus(ctx, id)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn(fmt.Sprintf("User %d active=%v", user.ID, user.Active))
	return nil
}

// UserDelete removes a user.
func (a *App) UserDelete(ctx context.Context) error {
	id, err := GetID(a.reader, "User id", os.Stdout)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	if err := a.users.Delete(ctx, id); err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Deleted user", id)
	return nil
}
