package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reoring/schemadoc"
	"github.com/reoring/schemadoc/jsonschema"
	"github.com/reoring/schemadoc/source/yaml"
)

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate the shape of schema documents",
		Long: `Validate that each FILE is a well-formed JSON Schema document.

Every issue is printed as "FILE: POINTER: code: message". The command exits
with status 1 when any document has issues.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, name := range args {
				if _, err := a.load(cmd.Context(), name); err != nil {
					if !errors.Is(err, errIssuesFound) {
						return err
					}
					failed = true
					continue
				}
				a.log.WithField("file", name).Info("ok")
			}
			if failed {
				return errIssuesFound
			}
			return nil
		},
	}
}

type fmtParams struct {
	output    string
	indent    int
	overwrite bool
}

func (a *app) fmtCommand() *cobra.Command {
	var p fmtParams
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Re-emit a schema with keywords in canonical order",
		Long: `Re-emit FILE with its keywords in canonical order.

Legacy spellings are rewritten to their standard form. With -w the result
replaces FILE instead of being printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if p.overwrite && name == "-" {
				return errors.New("-w cannot be used with stdin")
			}
			s, err := a.load(cmd.Context(), name)
			if err != nil {
				return err
			}
			out, err := render(s, p)
			if err != nil {
				return err
			}
			if !p.overwrite {
				_, err = a.stdout.Write(out)
				return err
			}
			info, err := os.Stat(name)
			if err != nil {
				return err
			}
			if err := os.WriteFile(name, out, info.Mode().Perm()); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
			a.log.WithField("file", name).Info("formatted")
			return nil
		},
	}
	cmd.Flags().StringVar(&p.output, "output", formatJSON, "output format: json or yaml")
	cmd.Flags().IntVar(&p.indent, "indent", 2, "JSON indentation width (0 = compact)")
	cmd.Flags().BoolVarP(&p.overwrite, "write", "w", false, "write the result back to FILE")
	return cmd
}

func render(s *jsonschema.Schema, p fmtParams) ([]byte, error) {
	v := s.Value()
	switch p.output {
	case formatYAML:
		return yaml.Marshal(v)
	case formatJSON:
		var (
			out []byte
			err error
		)
		if p.indent > 0 {
			out, err = schemadoc.MarshalIndent(v, "", strings.Repeat(" ", p.indent))
		} else {
			out, err = v.MarshalJSON()
		}
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("unknown --output %q", p.output)
}

func (a *app) walkCommand() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "walk FILE",
		Short: "List the pointer of every subschema",
		Long: `List the JSON Pointer of every subschema of FILE in pre-order.

Subschemas holding a $ref are followed by the reference. --from starts the
walk at the subschema the given pointer addresses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			start, err := jsonschema.Lookup(root, from)
			if err != nil {
				return err
			}
			return jsonschema.Walk(start, func(ptr string, s *jsonschema.Schema) error {
				full := schemadoc.DisplayPointer(from + ptr)
				if s.Ref != nil {
					_, err := fmt.Fprintf(a.stdout, "%s -> %s\n", full, *s.Ref)
					return err
				}
				_, err := fmt.Fprintln(a.stdout, full)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "JSON Pointer of the subschema to start at")
	return cmd
}

func (a *app) lintCommand() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "lint FILE...",
		Short: "Check schemas and report advisory findings",
		Long: `Check each FILE like "check" and then report advisory findings: unknown
format values, patterns that do not compile, duplicate enum values and
keywords that have no effect.

Findings are printed like issues. They only change the exit status when
--strict is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, name := range args {
				s, err := a.load(cmd.Context(), name)
				if err != nil {
					if !errors.Is(err, errIssuesFound) {
						return err
					}
					failed = true
					continue
				}
				findings := jsonschema.Lint(s)
				a.printIssues(name, findings)
				a.log.WithFields(logrus.Fields{"file": name, "findings": len(findings)}).Debug("linted")
				if strict && len(findings) > 0 {
					failed = true
				}
			}
			if failed {
				return errIssuesFound
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 when there are findings")
	return cmd
}
