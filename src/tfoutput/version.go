package tfoutput

import (
	"encoding/json"

	version "github.com/hashicorp/go-version"
	"github.com/pkg/errors"

	"github.com/terraform-tools/terraform-ansible-inventory/src/util"
)

type versionInfo struct {
	TerraformVersion string `json:"terraform_version"`
}

// CheckVersion runs `terraform version -json` in dir and fails when the
// reported version is older than minimum.
func CheckVersion(deps util.IDependencies, binary string, dir string, minimum string) error {
	required, err := version.NewVersion(minimum)
	if err != nil {
		return errors.Wrapf(err, "invalid minimum version %q", minimum)
	}
	stdout, stderr, exitCode := deps.ExecuteInDir(dir, binary, "version", "-json")
	if exitCode != 0 {
		return &ExternalToolError{ExitCode: exitCode, Stderr: stderr}
	}
	var info versionInfo
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		return &MalformedOutputError{Err: err}
	}
	reported, err := version.NewVersion(info.TerraformVersion)
	if err != nil {
		return &MalformedOutputError{Err: errors.Wrapf(err, "version %q", info.TerraformVersion)}
	}
	if reported.LessThan(required) {
		return errors.Errorf("terraform %s is older than the required %s", reported, required)
	}
	return nil
}
