package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	List                bool
	Host                string
	TerraformDir        string
	TerraformBinary     string
	MinTerraformVersion string
	ExportPath          string
	TextLogging         bool
	JournalLogging      bool
}

// EnvDefaults carries the ambient knobs that may come from the
// environment. The inventory protocol flags themselves are CLI-only.
type EnvDefaults struct {
	TerraformBinary string `envconfig:"TERRAFORM_BINARY" default:"terraform"`
	TextLogging     bool   `envconfig:"TEXT_LOGGING" default:"true"`
	JournalLogging  bool   `envconfig:"JOURNAL_LOGGING" default:"false"`
}

var GlobalConfig Config

func printHelpAndExit() {
	flag.CommandLine.Usage()
	os.Exit(0)
}

func (c *Config) Validate() error {
	var result *multierror.Error
	if c.List && c.Host != "" {
		result = multierror.Append(result, errors.New("--list and --host are mutually exclusive"))
	}
	if !c.List && c.Host == "" {
		result = multierror.Append(result, errors.New("one of --list or --host is required"))
	}
	if c.ExportPath != "" && !c.List {
		result = multierror.Append(result, errors.New("--export requires --list"))
	}
	if c.TerraformDir == "" {
		result = multierror.Append(result, errors.New("--terraform-dir must not be empty"))
	}
	if c.TerraformBinary == "" {
		result = multierror.Append(result, errors.New("--terraform-binary must not be empty"))
	}
	return result.ErrorOrNil()
}

func ProcessArgs() {
	var defaults EnvDefaults
	err := envconfig.Process("inventory", &defaults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "envconfig error: %v\n", err)
		os.Exit(2)
	}

	ret := &GlobalConfig
	flag.BoolVar(&ret.List, "list", false, "Print the full inventory document")
	flag.StringVar(&ret.Host, "host", "", "Print the variables of a single host")
	flag.StringVar(&ret.TerraformDir, "terraform-dir", ".", "Directory in which terraform is invoked")
	flag.StringVar(&ret.TerraformBinary, "terraform-binary", defaults.TerraformBinary, "Name or path of the terraform binary")
	flag.StringVar(&ret.MinTerraformVersion, "min-terraform-version", "", "Fail unless terraform reports at least this version")
	flag.StringVar(&ret.ExportPath, "export", "", "Also write the inventory as a static YAML file (with --list)")
	flag.BoolVar(&ret.TextLogging, "with-text-logging", defaults.TextLogging, "Log diagnostics as text on stderr")
	flag.BoolVar(&ret.JournalLogging, "with-journal-logging", defaults.JournalLogging, "Log diagnostics to systemd journal")
	h := flag.Bool("help", false, "Help message")
	flag.Parse()
	if h != nil && *h {
		printHelpAndExit()
	}

	if err := ret.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		flag.CommandLine.Usage()
		os.Exit(2)
	}
}
