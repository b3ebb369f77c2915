package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	projectservice "github.com/thenoetrevino/taskflow/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project with specified attributes.

Examples:
  # Simple project (human-readable output)
  taskflow project create --name="Backend API"

  # JSON output for agents
  taskflow project create --name="Backend API" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(taskflow project create --name="Backend API" --quiet)

  # With color and icon
  taskflow project create --name="Garden" --color="#2E7D32" --icon=Leaf
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Project name (default \"Untitled Project\")")
	cmd.Flags().String("color", "", "Display color as #RRGGBB (default #5B4FDB)")
	cmd.Flags().String("icon", "", "Display icon (default Folder)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")
	icon, _ := cmd.Flags().GetString("icon")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	if color != "" {
		if err := cli.ValidateColorHex(color); err != nil {
			return cli.Fail(formatter, err, "")
		}
	}

	project, err := cliInstance.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
		Name:  name,
		Color: color,
		Icon:  icon,
	})
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(project)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Project '%s' created successfully (ID: %d)\n", project.Name, project.ID)
	return nil
}
