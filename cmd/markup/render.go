package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/swdunlop/markup-go"
	"github.com/swdunlop/markup-go/attr"
	"github.com/swdunlop/markup-go/el"
	"github.com/swdunlop/markup-go/tag"
)

// attrFlags are the flags shared by commands that accept attributes.
type attrFlags struct {
	attrs string
	file  string
}

func (af *attrFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&af.attrs, "attrs", "a", "", "Attributes as a JSON or YAML object")
	cmd.Flags().StringVarP(&af.file, "attrs-file", "f", "", "Read attributes from a JSON or YAML file")
	cmd.MarkFlagsMutuallyExclusive("attrs", "attrs-file")
}

// load returns the attributes from the flags, or nil if none were given.
func (af *attrFlags) load() (attr.Map, error) {
	src := []byte(af.attrs)
	if af.file != `` {
		var err error
		src, err = os.ReadFile(af.file)
		if err != nil {
			return nil, err
		}
	}
	if len(strings.TrimSpace(string(src))) == 0 {
		return nil, nil
	}
	return parseAttrs(src)
}

// parseAttrs parses JSON if src is valid JSON, otherwise YAML.
func parseAttrs(src []byte) (attr.Map, error) {
	if gjson.ValidBytes(src) {
		return attr.ParseJSON(src)
	}
	return attr.ParseYAML(src)
}

func elementCmd() *cobra.Command {
	var (
		af      attrFlags
		content string
		stdin   bool
	)
	cmd := &cobra.Command{
		Use:   "element <tag>",
		Short: "Render an element with content and a closing tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := af.load()
			if err != nil {
				return err
			}
			name := args[0]
			if !el.IsStandard(name) {
				log.Debug().Str(`tag`, name).Msg(`not a standard element`)
			}
			var (
				body    func() string
				readErr error
			)
			switch {
			case stdin:
				body = func() string {
					p, err := io.ReadAll(cmd.InOrStdin())
					readErr = err
					return string(p)
				}
			case cmd.Flags().Changed("content"):
				body = func() string { return content }
			}
			out := tag.Element(name, attrs, body)
			if readErr != nil {
				return readErr
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	af.register(cmd)
	cmd.Flags().StringVarP(&content, "content", "c", "", "Raw content of the element")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "Read raw content from standard input")
	cmd.MarkFlagsMutuallyExclusive("content", "stdin")
	return cmd
}

func voidCmd() *cobra.Command {
	var af attrFlags
	cmd := &cobra.Command{
		Use:   "void <tag>",
		Short: "Render a void element, which has no content or closing tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := af.load()
			if err != nil {
				return err
			}
			if !el.IsVoid(args[0]) {
				log.Debug().Str(`tag`, args[0]).Msg(`not a void element`)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tag.Void(args[0], attrs))
			return err
		},
	}
	af.register(cmd)
	return cmd
}

func attrsCmd() *cobra.Command {
	var af attrFlags
	cmd := &cobra.Command{
		Use:   "attrs",
		Short: "Render an attribute string",
		Long:  `Render an attribute string from --attrs, --attrs-file or, if neither is given, standard input.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				attrs attr.Map
				err   error
			)
			if af.attrs == `` && af.file == `` {
				var src []byte
				src, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				attrs, err = parseAttrs(src)
			} else {
				attrs, err = af.load()
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), attr.Serialize(attrs))
			return err
		},
	}
	af.register(cmd)
	return cmd
}

func sanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize [text...]",
		Short: "Strip tags from text",
		Long:  `Strip tags from the arguments, joined by spaces, or from standard input if there are none.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, ` `)
			if len(args) == 0 {
				p, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(p)
			}
			_, err := io.WriteString(cmd.OutOrStdout(), markup.Sanitize(text))
			if err == nil && len(args) > 0 {
				_, err = io.WriteString(cmd.OutOrStdout(), "\n")
			}
			return err
		},
	}
}

func tagsCmd() *cobra.Command {
	var voids bool
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the standard elements, or the void elements with --void",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := el.Standard
			if voids {
				names = el.Voids
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return err
		},
	}
	cmd.Flags().BoolVar(&voids, "void", false, "List void elements")
	return cmd
}
