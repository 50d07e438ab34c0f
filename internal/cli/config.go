package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the scanvalue config file",
	}
	cmd.AddCommand(newConfigShowCmd(o), newConfigInitCmd(o))
	return cmd
}

func newConfigShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.print(cmd, o.cfg, func() string {
				data, err := yaml.Marshal(o.cfg)
				if err != nil {
					return err.Error() + "\n"
				}
				return fmt.Sprintf("# %s\n%s", o.cfgPath, data)
			})
		},
	}
}

func newConfigInitCmd(o *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(o.cfgPath); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", o.cfgPath)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := o.cfg.Save(o.cfgPath); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			o.log.Debug("config written")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", o.cfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
