package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plt-rs/plt/draw/canvasbackend"
)

// newLayoutCmd builds the layout command, a debug tool that resolves a
// script's space allocation and dumps the boundary rectangles as JSON.
func newLayoutCmd() *cobra.Command {
	var (
		dataPath  string
		themeName string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "layout <script>",
		Short: "Dump the resolved subplot layout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			fig, th, err := compileScript(args[0], dataPath, themeName)
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".layout.json"
			}
			backend := canvasbackend.New(canvasbackend.Options{
				Size:      fig.Size(),
				FaceColor: th.Face,
			})
			if err := fig.WriteDebugJSON(backend, output); err != nil {
				return err
			}
			logger.Info("wrote layout", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "JSON document bound to ${path} references")
	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "theme name (default, dark) or TOML theme file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output JSON path (default: script name with .layout.json)")
	return cmd
}
