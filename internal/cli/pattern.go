package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/scanvalue"
)

type patternResult struct {
	Pattern string `yaml:"pattern"`
	Length  uint   `yaml:"length"`
	Width   int    `yaml:"width"`
	Match   *bool  `yaml:"match,omitempty"`
}

func (r *patternResult) text() string {
	s := fmt.Sprintf("pattern: %s\nlength: %d\nwidth: %d\n", r.Pattern, r.Length, r.Width)
	if r.Match != nil {
		s += fmt.Sprintf("match: %t\n", *r.Match)
	}
	return s
}

func newPatternCmd(o *options) *cobra.Command {
	var match string
	cmd := &cobra.Command{
		Use:   "pattern <byte>...",
		Short: "Parse a bytearray pattern such as: AB ?? 00",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := o.pattern(args, match)
			if err != nil {
				return err
			}
			return o.print(cmd, res, res.text)
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "hex bytes to test the pattern against")
	return cmd
}

func (o *options) pattern(tokens []string, match string) (*patternResult, error) {
	u, err := scanvalue.ParsePatternWildcard(tokens, o.cfg.Wildcard)
	if err != nil {
		return nil, err
	}
	defer u.Release()

	parts := make([]string, u.Flags.Length)
	for i := range parts {
		if u.Wildcards[i] == scanvalue.WildcardAny {
			parts[i] = o.cfg.Wildcard
			continue
		}
		parts[i] = fmt.Sprintf("%02X", u.Bytes[i])
	}
	res := &patternResult{
		Pattern: strings.Join(parts, " "),
		Length:  u.Flags.Length,
		Width:   scanvalue.MaxWidthBytes(u.Flags, scanvalue.ByteArray),
	}
	if match != "" {
		b, err := hex.DecodeString(strings.ReplaceAll(match, " ", ""))
		if err != nil {
			return nil, fmt.Errorf("decode --match: %w", err)
		}
		ok := u.Matches(b)
		res.Match = &ok
	}
	return res, nil
}
