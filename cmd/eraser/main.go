package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"github.com/eraser-editor/eraser/internal/markdown"
	"github.com/eraser-editor/eraser/internal/printer"
	"github.com/eraser-editor/eraser/internal/ui"
)

func init() {
	version.SetDefaultModule("github.com/eraser-editor/eraser")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type renderOptions struct {
	width int
	plain bool
}

func addRenderFlags(flags *pflag.FlagSet, opts *renderOptions) {
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.BoolVarP(&opts.plain, "plain", "p", false, "Generate non-ANSI output")
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "eraser [file]",
		Short:         "Markdown editor with a live preview",
		Args:          cobra.MaximumNArgs(1),
		Version:       fmt.Sprint(version.Current()),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(configDir, args)
		},
	}
	root.SetVersionTemplate(fmt.Sprint(version.Module()) + " {{.Version}}\n")
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "Settings directory (default <user config>/eraser)")

	root.AddCommand(newRenderCmd(), newEventsCmd())
	return root
}

func runEditor(configDir string, args []string) error {
	if configDir == "" {
		configDir = ui.DefaultConfigDir()
	}

	// The screen owns the terminal, so logs go to a file
	logFile, err := openLogFile(configDir)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	app := ui.NewApp(configDir)
	if len(args) == 1 {
		if err := app.Open(args[0]); err != nil {
			return err
		}
	}
	return app.Run()
}

func openLogFile(configDir string) (*os.File, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(configDir, "eraser.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Print the preview of a markdown file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			p := printer.New(out, printer.Options{
				Width: resolveWidth(opts.width),
				Plain: opts.plain || !isTerminal(out),
			})
			if err := markdown.NewMarkdownConverter().Render(string(src), p); err != nil {
				return err
			}
			return p.Err()
		},
	}
	addRenderFlags(cmd.Flags(), &opts)
	return cmd
}

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events [file|-]",
		Short: "Dump the markdown event stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			events, err := markdown.NewMarkdownConverter().Events(src)
			if err != nil {
				return err
			}
			dump := litter.Options{Compact: true, StripPackageNames: true, Separator: " "}
			out := cmd.OutOrStdout()
			for _, ev := range events {
				if _, err := fmt.Fprintln(out, dump.Sdump(ev)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// readInput reads the named file, or stdin for no argument or "-"
func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return data, nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(printer.DefaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
