package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/scanvalue"
	"github.com/rawbytedev/scanvalue/pkg/config"
)

var version = "0.1.0"

type options struct {
	cfgFile  string
	output   string
	scanType string
	verbose  bool

	cfgPath string
	cfg     *config.Config
	log     *zap.Logger
}

// NewRootCmd builds the scanvalue command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "scanvalue",
		Short: "Parse and inspect memory scanner search values",
		Long: `scanvalue parses search literals and bytearray patterns the way a memory
scanner does, showing every type interpretation a value can take.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.log != nil {
				_ = o.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default is ~/.scanvalue/config.yaml)")
	root.PersistentFlags().StringVarP(&o.output, "output", "o", "text", "output format: text, yaml")
	root.PersistentFlags().StringVar(&o.scanType, "scan-type", "", "scan data type, overrides the config file")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newParseCmd(o), newPatternCmd(o), newConfigCmd(o), newVersionCmd())
	return root
}

func (o *options) setup() error {
	path := o.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	o.cfgPath = path
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.scanType != "" {
		cfg.ScanDataType = o.scanType
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	o.cfg = cfg

	o.log = zap.NewNop()
	if o.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		o.log = l
	}
	scanvalue.SetLogger(o.log)
	return nil
}

func (o *options) print(cmd *cobra.Command, v any, text func() string) error {
	switch o.output {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	case "text", "":
		_, err := fmt.Fprint(cmd.OutOrStdout(), text())
		return err
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show scanvalue version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "scanvalue version %s\n", version)
			return nil
		},
	}
}
