package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/terraform-tools/terraform-ansible-inventory/src/config"
	"github.com/terraform-tools/terraform-ansible-inventory/src/inventory"
	"github.com/terraform-tools/terraform-ansible-inventory/src/tfoutput"
	"github.com/terraform-tools/terraform-ansible-inventory/src/util"
)

func exitCode(err error) int {
	if toolErr, ok := err.(*tfoutput.ExternalToolError); ok && toolErr.ExitCode > 0 {
		return toolErr.ExitCode
	}
	return 1
}

func fatal(err error) {
	log.WithError(err).Error("Inventory run failed")
	os.Exit(exitCode(err))
}

func main() {
	config.ProcessArgs()
	cfg := &config.GlobalConfig
	util.SetLogging("terraform-ansible-inventory", cfg.TextLogging, cfg.JournalLogging)
	deps := util.NewDependencies()

	if err := tfoutput.EnsureWorkingDir(deps, cfg.TerraformDir); err != nil {
		fatal(err)
	}
	if cfg.MinTerraformVersion != "" {
		if err := tfoutput.CheckVersion(deps, cfg.TerraformBinary, cfg.TerraformDir, cfg.MinTerraformVersion); err != nil {
			fatal(err)
		}
	}

	inv, err := inventory.Build(deps, cfg.TerraformBinary, cfg.TerraformDir)
	if err != nil {
		fatal(err)
	}

	var out []byte
	if cfg.List {
		out, err = inv.ToJSON()
	} else {
		out, err = inv.HostJSON(cfg.Host)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))

	if cfg.ExportPath != "" {
		if err := inv.ExportYAML(deps, cfg.ExportPath); err != nil {
			fatal(err)
		}
	}
}
