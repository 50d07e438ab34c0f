package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rawbytedev/scanvalue"
)

type tagView struct {
	Tag   string `yaml:"tag"`
	Value string `yaml:"value"`
}

type parseResult struct {
	Input string    `yaml:"input"`
	Kind  string    `yaml:"kind"`
	Scan  string    `yaml:"scan_data_type"`
	Tags  []string  `yaml:"tags,omitempty"`
	Views []tagView `yaml:"views,omitempty"`
	Width int       `yaml:"width"`
}

func (r *parseResult) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "input: %s\nkind: %s\nscan: %s\n", r.Input, r.Kind, r.Scan)
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "tags: %s\n", strings.Join(r.Tags, " "))
	}
	for _, v := range r.Views {
		fmt.Fprintf(&b, "  %-4s %s\n", v.Tag, v.Value)
	}
	fmt.Fprintf(&b, "width: %d\n", r.Width)
	return b.String()
}

func newParseCmd(o *options) *cobra.Command {
	var as string
	cmd := &cobra.Command{
		Use:   "parse <literal>",
		Short: "Parse a search literal and show every type it can be",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := o.parse(args[0], as)
			if err != nil {
				return err
			}
			return o.print(cmd, res, res.text)
		},
	}
	cmd.Flags().StringVar(&as, "as", "number", "literal kind: int, float, number")
	return cmd
}

func (o *options) parse(literal, as string) (*parseResult, error) {
	mode := o.cfg.DataType()
	res := &parseResult{Input: literal, Scan: mode.String()}

	switch mode {
	case scanvalue.ByteArray:
		return nil, fmt.Errorf("scan data type %s takes a pattern, use the pattern command", mode)
	case scanvalue.String:
		u, err := scanvalue.ParseString(literal)
		if err != nil {
			return nil, err
		}
		res.Kind = u.Kind().String()
		res.Width = scanvalue.MaxWidthBytes(u.Flags, mode)
		return res, nil
	}

	var parse func(string) (*scanvalue.UserValue, error)
	switch as {
	case "int":
		parse = scanvalue.ParseInt
	case "float":
		parse = scanvalue.ParseFloat
	case "number", "":
		parse = scanvalue.ParseNumber
	default:
		return nil, fmt.Errorf("unknown literal kind %q", as)
	}
	u, err := parse(literal)
	if err != nil {
		return nil, err
	}
	flags := u.Flags.Intersect(mode.DefaultFlags())
	if flags.Empty() {
		return nil, fmt.Errorf("%q is not a valid %s value", literal, mode)
	}
	o.log.Debug("parsed literal",
		zap.String("input", literal), zap.Stringer("scan", mode), zap.Int("tags", len(flags.Tags())))

	res.Kind = u.Kind().String()
	for _, t := range flags.Tags() {
		v := scanvalue.Value{Flags: scanvalue.FlagsOf(t)}
		if err := scanvalue.Project(&v, u); err != nil {
			return nil, err
		}
		res.Tags = append(res.Tags, t.String())
		res.Views = append(res.Views, tagView{Tag: t.String(), Value: scanvalue.FormatN(v, o.cfg.FormatCapacity)})
	}
	res.Width = scanvalue.MaxWidthBytes(flags, mode)
	return res, nil
}
