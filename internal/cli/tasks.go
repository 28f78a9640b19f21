package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskdash/internal/model"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}

	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksGetCmd(app))
	cmd.AddCommand(newTasksCreateCmd(app))
	cmd.AddCommand(newTasksUpdateCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	cmd.AddCommand(newTasksCompleteCmd(app))
	cmd.AddCommand(newTasksReopenCmd(app))
	cmd.AddCommand(newTasksStatsCmd(app))

	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var status string
	var search string
	var priority string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks (server-ordered by due date)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := guardedClient(app)
			if err != nil {
				return err
			}
			tasks, err := client.ListTasks(cmd.Context())
			if err != nil {
				return err
			}

			f, err := parseFilter(status, search, priority)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, f.Apply(tasks))
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "Status bucket (all|pending|completed)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive substring match on title or description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority filter (LOW|MEDIUM|HIGH)")
	return cmd
}

func newTasksGetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <task-id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			client, _, err := guardedClient(app)
			if err != nil {
				return err
			}
			tasks, err := client.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range tasks {
				if t.ID == id {
					return writeOut(cmd, app, t)
				}
			}
			return errTaskNotFound(id)
		},
	}
	return cmd
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var title string
	var description string
	var priority string
	var due string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(title) == "" {
				return errors.New("missing --title")
			}
			dueDate, err := parseDueDate(due)
			if err != nil {
				return err
			}
			client, _, err := guardedClient(app)
			if err != nil {
				return err
			}
			created, err := client.CreateTask(cmd.Context(), model.TaskFields{
				Title:       strings.TrimSpace(title),
				Description: description,
				Priority:    parsePriorityOr(priority, model.PriorityMedium),
				Status:      model.StatusPending,
				DueDate:     dueDate,
			})
			if err != nil {
				return err
			}
			return writeOut(cmd, app, created)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&priority, "priority", "MEDIUM", "Priority (LOW|MEDIUM|HIGH)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, default today)")
	return cmd
}

func newTasksUpdateCmd(app *App) *cobra.Command {
	var title string
	var description string
	var priority string
	var due string

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task's editable fields (full replacement on the server)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			client, _, err := guardedClient(app)
			if err != nil {
				return err
			}

			// The update endpoint is a full replacement, so start from the
			// current record and overlay the provided flags. Status is carried
			// over untouched; complete/reopen are separate commands.
			tasks, err := client.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			var current *model.Task
			for i := range tasks {
				if tasks[i].ID == id {
					current = &tasks[i]
					break
				}
			}
			if current == nil {
				return errTaskNotFound(id)
			}

			fields := current.Fields()
			if cmd.Flags().Changed("title") {
				fields.Title = strings.TrimSpace(title)
			}
			if cmd.Flags().Changed("description") {
				fields.Description = description
			}
			if cmd.Flags().Changed("priority") {
				fields.Priority = parsePriorityOr(priority, fields.Priority)
			}
			if cmd.Flags().Changed("due") {
				d, err := parseDueDate(due)
				if err != nil {
					return err
				}
				fields.DueDate = d
			}

			updated, err := client.UpdateTask(cmd.Context(), id, fields)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, updated)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority (LOW|MEDIUM|HIGH)")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	return cmd
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task (asks for confirmation unless --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirmLine(cmd, fmt.Sprintf("Delete task %d? [y/N] ", id))
				if err != nil {
					return err
				}
				if !ok {
					// Declined: no call, no output beyond the prompt.
					return nil
				}
			}
			client, _, err := guardedClient(app)
			if err != nil {
				return err
			}
			if err := client.DeleteTask(cmd.Context(), id); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"deleted": id})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func newTasksCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			client, _, err := guardedClient(app)
			if err != nil {
				return err
			}
			t, err := client.MarkComplete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, t)
		},
	}
}

func newTasksReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <task-id>",
		Short: "Mark a completed task pending again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			client, _, err := guardedClient(app)
			if err != nil {
				return err
			}
			t, err := client.MarkPending(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, t)
		},
	}
}

func newTasksStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show total/pending/completed counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := guardedClient(app)
			if err != nil {
				return err
			}
			tasks, err := client.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			return writeOut(cmd, app, model.ComputeStats(tasks))
		},
	}
}

func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id: %q", s)
	}
	return id, nil
}

func parseFilter(status, search, priority string) (model.Filter, error) {
	f := model.Filter{Search: search}
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "all":
		f.Bucket = model.BucketAll
	case "pending":
		f.Bucket = model.BucketPending
	case "completed":
		f.Bucket = model.BucketCompleted
	default:
		return model.Filter{}, fmt.Errorf("invalid --status %q (want all|pending|completed)", status)
	}
	if p := strings.TrimSpace(priority); p != "" {
		f.Priority = model.Priority(strings.ToUpper(p))
	}
	return f, nil
}

func parsePriorityOr(s string, fallback model.Priority) model.Priority {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return fallback
	}
	return model.Priority(s)
}

func parseDueDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", s)
	}
	return s, nil
}

func confirmLine(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	r := bufio.NewReader(cmd.InOrStdin())
	line, err := r.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
