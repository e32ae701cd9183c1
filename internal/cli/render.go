package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/plt-rs/plt"
	"github.com/plt-rs/plt/draw"
	"github.com/plt-rs/plt/draw/canvasbackend"
	"github.com/plt-rs/plt/script"
	"github.com/plt-rs/plt/theme"
)

func newRenderCmd() *cobra.Command {
	var (
		dataPath  string
		themeName string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "render <script>",
		Short: "Compile a chart script and render it to an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			start := time.Now()

			fig, th, err := compileScript(args[0], dataPath, themeName)
			if err != nil {
				return err
			}
			logger.Debug("compiled script", "path", args[0], "size", fig.Size())

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			format := draw.FormatPNG
			if strings.EqualFold(filepath.Ext(output), ".svg") {
				format = draw.FormatSVG
			}

			backend := canvasbackend.New(canvasbackend.Options{
				Size:      fig.Size(),
				FaceColor: th.Face,
			})
			if err := fig.DrawFile(backend, format, output); err != nil {
				return err
			}
			logger.Info(fmt.Sprintf("rendered %s (%s)", output, time.Since(start).Round(time.Millisecond)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "JSON document bound to ${path} references")
	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "theme name (default, dark) or TOML theme file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path (default: script name with .png)")
	return cmd
}

// compileScript loads the script, its data document, and the theme, and
// compiles them into a figure.
func compileScript(scriptPath, dataPath, themeName string) (*plt.Figure, theme.Theme, error) {
	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, theme.Theme{}, fmt.Errorf("reading script: %w", err)
	}

	var data any
	if dataPath != "" {
		raw, err := os.ReadFile(dataPath)
		if err != nil {
			return nil, theme.Theme{}, fmt.Errorf("reading data: %w", err)
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, theme.Theme{}, fmt.Errorf("parsing data: %w", err)
		}
	}

	th, err := resolveTheme(themeName)
	if err != nil {
		return nil, theme.Theme{}, err
	}

	fig, err := script.CompileString(string(src), script.CompileOptions{
		Data:      data,
		Format:    &th.Format,
		FaceColor: &th.Face,
	})
	if err != nil {
		return nil, theme.Theme{}, err
	}
	return fig, th, nil
}

// resolveTheme treats the argument as a TOML file when it names one on disk,
// and as a preset name otherwise.
func resolveTheme(name string) (theme.Theme, error) {
	if name == "" {
		return theme.Default(), nil
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return theme.Load(name, theme.Default())
	}
	return theme.Named(name)
}
