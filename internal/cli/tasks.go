package cli

import (
	"context"
	"fmt"
	"os"

	"mockadmin/internal/models"
	"mockadmin/internal/query"
	"mockadmin/internal/services"
)

// Tasks lists the task collection, optionally filtered by a search term.
func (a *App) Tasks(ctx context.Context) error {
	search, err := GetSimpleText(a.reader, "Search (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.tasks.List(ctx, services.ListTasksParams{
		Params: query.Params{Search: search},
	})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	for _, t := range res.Data {
		mark := " "
		if t.Done {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("%4d  [%s] %s", t.ID, mark, t.Name))
	}
	printlnFn(fmt.Sprintf("page %d/%d, %d total", res.Page, res.TotalPages, res.Total))
	return nil
}

// TaskAdd creates a task.
func (a *App) TaskAdd(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Task name", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.tasks.Create(ctx, models.TaskCreate{Name: name})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Created task", task.ID)
	return nil
}

// TaskToggle flips a task's done flag.
func (a *App) TaskToggle(ctx context.Context) error {
	id, err := GetID(a.reader, "Task id", os.Stdout)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	task, err := a.tasks.ToggleStatus(ctx, id)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Task %d done=%v", task.ID, task.Done))
	return nil
}

// TaskDelete removes a task.
func (a *App) TaskDelete(ctx context.Context) error {
	id, err := GetID(a.reader, "Task id", os.Stdout)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	if err := a.tasks.Delete(ctx, id); err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Deleted task", id)
	return nil
}
