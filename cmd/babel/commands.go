package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/babel"
	"github.com/dmitrymomot/babel/pkg/config"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/logger"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks invalid command-line input to cmd.
type usageError struct {
	cmd *cli.Command
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(cmd *cli.Command, format string, args ...any) error {
	return usageError{cmd: cmd, err: fmt.Errorf(format, args...)}
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout, stderr)

	err := cmd.Run(ctx, args)
	if err == nil {
		return exitOK
	}

	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "error: %v\n\n", err)
		printUsage(stderr, ue.cmd, args)
		return exitUsage
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return exitFailure
}

// printUsage writes the help of the command that rejected its input.
func printUsage(w io.Writer, cmd *cli.Command, args []string) {
	if cmd == nil {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", strings.Join(commandPath(args), " "))
		return
	}
	tmpl := cli.CommandHelpTemplate
	if cmd.Root() == cmd {
		tmpl = cli.RootCommandHelpTemplate
	}
	cli.HelpPrinter(w, tmpl, cmd)
}

// commandPath returns the program and subcommand names of args.
func commandPath(args []string) []string {
	path := []string{"babel"}
	for _, a := range args[min(1, len(args)):] {
		if a == "export_strings" || a == "import_strings" {
			path = append(path, a)
			break
		}
	}
	return path
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	root := &cli.Command{
		Name:      "babel",
		Usage:     "Exchange gettext catalogs with translators as JSON",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Usage:   "Application root; relative paths are resolved against it",
				Sources: cli.EnvVars("BABEL_ROOT"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				Sources: cli.EnvVars("BABEL_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			exportCommand(stdout, stderr),
			importCommand(stdout, stderr),
		},
		// run reports errors and picks the exit code.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	applyCommandSetting(root)
	return root
}

func applyCommandSetting(cmd *cli.Command) {
	cmd.OnUsageError = func(_ context.Context, c *cli.Command, err error, _ bool) error {
		return usageError{cmd: c, err: err}
	}
	cmd.HideHelpCommand = true
	cmd.Suggest = true
	for _, sub := range cmd.Commands {
		applyCommandSetting(sub)
	}
}

func exportCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "export_strings",
		Usage: "Export the strings of every locale into a JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "Source locale; its catalog defines the exported message ids (default: the default locale)",
			},
			&cli.StringFlag{
				Name:    "domain",
				Aliases: []string{"D"},
				Usage:   "Translation domain (default: the configured domain)",
			},
			&cli.StringFlag{
				Name:    "translation_folder",
				Aliases: []string{"t"},
				Usage:   "Translation directory (default: the first configured directory)",
			},
			&cli.StringFlag{
				Name:    "output_dir",
				Aliases: []string{"o"},
				Usage:   "Directory of the JSON document (default: the root)",
			},
			&cli.StringFlag{
				Name:    "filename",
				Aliases: []string{"f"},
				Usage:   "Name of the JSON document without extension",
				Value:   babel.DefaultStringsFilename,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := noArgs(cmd); err != nil {
				return err
			}
			if lang := cmd.String("lang"); lang != "" {
				if _, err := i18n.ParseLocale(lang); err != nil {
					return usagef(cmd, "--lang: %w", err)
				}
			}
			if err := validFilename(cmd); err != nil {
				return err
			}

			b, err := newBabel(cmd, stderr)
			if err != nil {
				return err
			}

			path, err := b.ExportStrings(babel.ExportStringsOptions{
				Lang:              cmd.String("lang"),
				Domain:            cmd.String("domain"),
				TranslationFolder: cmd.String("translation_folder"),
				OutputDir:         cmd.String("output_dir"),
				Filename:          cmd.String("filename"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "wrote %s\n", path)
			return nil
		},
	}
}

func importCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "import_strings",
		Usage: "Rewrite the catalogs of every locale from a template and a JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "domain",
				Aliases: []string{"D"},
				Usage:   "Translation domain (default: the configured domain)",
			},
			&cli.StringFlag{
				Name:    "translation_folder",
				Aliases: []string{"t"},
				Usage:   "Translation directory (default: the first configured directory)",
			},
			&cli.StringFlag{
				Name:    "input_dir",
				Aliases: []string{"i"},
				Usage:   "Directory of the JSON document (default: the root)",
			},
			&cli.StringFlag{
				Name:    "filename",
				Aliases: []string{"f"},
				Usage:   "Name of the JSON document without extension",
				Value:   babel.DefaultStringsFilename,
			},
			&cli.StringFlag{
				Name:  "template",
				Usage: "Message template (default: <domain>.pot in the root)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := noArgs(cmd); err != nil {
				return err
			}
			if err := validFilename(cmd); err != nil {
				return err
			}

			b, err := newBabel(cmd, stderr)
			if err != nil {
				return err
			}

			result, err := b.ImportStrings(babel.ImportStringsOptions{
				Domain:            cmd.String("domain"),
				TranslationFolder: cmd.String("translation_folder"),
				InputDir:          cmd.String("input_dir"),
				Filename:          cmd.String("filename"),
				Template:          cmd.String("template"),
			})
			if err != nil {
				return err
			}
			for _, f := range result.Files {
				fmt.Fprintf(stdout, "wrote %s\n", f)
			}
			if n := len(result.Dropped); n > 0 {
				fmt.Fprintf(stdout, "dropped %d message(s) missing from the template\n", n)
			}
			return nil
		},
	}
}

func noArgs(cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return usagef(cmd, "unexpected argument %q", cmd.Args().First())
	}
	return nil
}

func validFilename(cmd *cli.Command) error {
	name := cmd.String("filename")
	if name == "" {
		return usagef(cmd, "--filename must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return usagef(cmd, "--filename %q must not contain a path separator", name)
	}
	return nil
}

// newBabel builds a Babel instance from the environment, the optional
// configuration file and the global flags.
func newBabel(cmd *cli.Command, logOutput io.Writer) (*babel.Babel, error) {
	cfg, err := babel.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	log, err := newLogger(logOutput)
	if err != nil {
		return nil, err
	}

	opts := []babel.Option{babel.WithLogger(log)}
	if root := cmd.String("root"); root != "" {
		opts = append(opts, babel.WithRoot(root))
	}
	return babel.New(cfg, opts...)
}

// newLogger returns a text logger configured by LOG_LEVEL.
func newLogger(w io.Writer) (*slog.Logger, error) {
	var lc logger.Config
	if err := config.Load(&lc); err != nil {
		return nil, err
	}
	lc.Format = logger.FormatText
	lc.Output = w
	return logger.New(lc)
}
