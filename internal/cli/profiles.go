package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellgrid/pkg/screen"
)

// profilesCommand creates the profiles command.
func (c *CLI) profilesCommand() *cobra.Command {
	var config string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List screen profiles",
		Long:  `List the built-in screen profiles, plus any defined in a --config TOML file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := screenFlags{config: config}
			reg, err := flags.registry()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), profilesTable(reg))
			return nil
		},
	}

	cmd.Flags().StringVar(&config, "config", "", "TOML file with additional [profiles.<key>] tables")
	return cmd
}

// profilesTable renders every profile in reg as a table, marking the default.
func profilesTable(reg *screen.Registry) string {
	defaultKey := reg.DefaultKey()
	keys := reg.Keys()

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		p, err := reg.Get(k)
		if err != nil {
			continue
		}
		mark := ""
		if k == defaultKey {
			mark = "*"
		}
		rows = append(rows, []string{
			mark,
			k,
			p.Name,
			p.Shape.String(),
			fmt.Sprintf("%gx%g", p.PhysicalWidth, p.PhysicalHeight),
			strconv.Itoa(p.TargetCells),
			strconv.FormatFloat(p.SizeScale, 'f', -1, 64),
			strconv.FormatFloat(p.Gap, 'f', -1, 64),
			strconv.Itoa(p.AllowCut),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Key", "Name", "Shape", "Size", "Target", "Scale", "Gap", "Cut").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if row >= 0 && row < len(rows) && rows[row][0] == "*" {
				return base.Foreground(colorCyan)
			}
			return base
		})

	return t.Render()
}
