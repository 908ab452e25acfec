package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/petal-labs/textutils/textops"
	"github.com/petal-labs/textutils/tool"
)

// NewToolsCmd creates the "tools" command group.
func NewToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect the built-in tool catalog",
	}
	cmd.AddCommand(newToolsListCmd())
	cmd.AddCommand(newToolsInspectCmd())
	return cmd
}

func newToolsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in tools",
		RunE:  runToolsList,
	}
}

func runToolsList(cmd *cobra.Command, _ []string) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tREQUIRED\tOPTIONAL\tDESCRIPTION")
	for _, d := range textops.Registrations() {
		required := make([]string, 0, len(d.Params))
		optional := make([]string, 0, len(d.Params))
		for _, p := range d.Params {
			if p.Required {
				required = append(required, p.Name)
			} else {
				optional = append(optional, p.Name)
			}
		}
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\n",
			d.Name,
			joinOrDash(required),
			joinOrDash(optional),
			d.Description,
		)
	}
	return writer.Flush()
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

func newToolsInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show a tool's description and input schema",
		Args:  cobra.ExactArgs(1),
		RunE:  runToolsInspect,
	}
}

func runToolsInspect(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])

	var descriptor tool.Descriptor
	found := false
	for _, d := range textops.Registrations() {
		if d.Name == name {
			descriptor = d
			found = true
			break
		}
	}
	if !found {
		return exitError(exitValidation, "tool '%s' not found", name)
	}

	out, err := json.MarshalIndent(map[string]any{
		"name":        descriptor.Name,
		"description": descriptor.Description,
		"inputSchema": descriptor.InputSchema(),
	}, "", "  ")
	if err != nil {
		return exitError(exitRuntime, "encoding tool schema: %v", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
