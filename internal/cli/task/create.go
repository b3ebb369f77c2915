package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task with specified attributes.

Examples:
  # Simple task (human-readable output)
  taskflow task create --title="Buy milk"

  # Due tomorrow, filed under project 1, high priority
  taskflow task create --title="Ship release" --due=tomorrow --project=1 --priority=high

  # JSON output for agents
  taskflow task create --title="Fix bug" --json

  # Quiet mode for bash capture
  TASK_ID=$(taskflow task create --title="Fix bug" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title")
	cmd.Flags().String("priority", "medium", "Priority: low, medium, high")
	cmd.Flags().String("due", "", "Due date: YYYY-MM-DD, today, tomorrow or today+N")
	cmd.Flags().Int("project", 0, "Project ID")
	cmd.Flags().Bool("completed", false, "Create the task already completed")

	// Agent-friendly flags (REQUIRED on all commands)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	dueFlag, _ := cmd.Flags().GetString("due")
	projectID, _ := cmd.Flags().GetInt("project")
	completed, _ := cmd.Flags().GetBool("completed")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	priority, err := cli.ParsePriority(priorityFlag)
	if err != nil {
		return cli.Fail(formatter, err, "Valid priorities are: low, medium, high")
	}

	req := taskservice.CreateTaskRequest{
		Title:     title,
		Priority:  priority,
		Completed: completed,
	}

	if dueFlag != "" {
		due, err := cli.ParseDate(dueFlag, cliInstance.App.Now())
		if err != nil {
			return cli.Fail(formatter, err, "")
		}
		req.DueDate = &due
	}

	var project *models.Project
	if cmd.Flags().Changed("project") {
		project, err = cliInstance.App.ProjectService.GetProjectByID(ctx, projectID)
		if err != nil {
			return cli.Fail(formatter, err,
				"Use 'taskflow project list' to see available projects or 'taskflow project create' to create a new one")
		}
		req.ProjectID = models.IntPtr(projectID)
	}

	task, err := cliInstance.App.TaskService.CreateTask(ctx, req)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}
	adjustCounts(ctx, cliInstance, nil, []*models.Task{task})

	// Output based on mode (JSON/Quiet/Human)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Task '%s' created successfully (ID: %d)\n", task.Title, task.ID)
	if project != nil {
		fmt.Fprintf(out, "  Project: %s\n", project.Name)
	}
	fmt.Fprintf(out, "  Priority: %s\n", task.Priority)
	if task.DueDate != nil {
		fmt.Fprintf(out, "  Due: %s\n", task.DueDate)
	}
	return nil
}
