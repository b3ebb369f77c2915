package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	projectservice "github.com/thenoetrevino/taskflow/internal/services/project"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <project_id>",
		Short: "Update a project",
		Long: `Update the fields given as flags; everything else stays as it is.

Examples:
  taskflow project update 2 --name="Household"
  taskflow project update 2 --color="#FF8800" --order=1
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("color", "", "New color as #RRGGBB")
	cmd.Flags().String("icon", "", "New icon")
	cmd.Flags().Int("order", 0, "New display order")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	id, err := cli.ParseID(args[0])
	if err != nil {
		return cli.Usage(formatter, err.Error())
	}

	var req projectservice.UpdateProjectRequest
	if flags.Changed("name") {
		name, _ := flags.GetString("name")
		req.Name = &name
	}
	if flags.Changed("color") {
		color, _ := flags.GetString("color")
		if err := cli.ValidateColorHex(color); err != nil {
			return cli.Fail(formatter, err, "")
		}
		req.Color = &color
	}
	if flags.Changed("icon") {
		icon, _ := flags.GetString("icon")
		req.Icon = &icon
	}
	if flags.Changed("order") {
		order, _ := flags.GetInt("order")
		req.Order = &order
	}

	project, err := cliInstance.App.ProjectService.UpdateProject(ctx, id, req)
	if err != nil {
		return cli.Fail(formatter, err, "Use 'taskflow project list' to see available projects")
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(project)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Project %d updated successfully\n", project.ID)
	return nil
}
