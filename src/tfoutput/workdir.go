package tfoutput

import (
	"github.com/pkg/errors"

	"github.com/terraform-tools/terraform-ansible-inventory/src/util"
)

// EnsureWorkingDir verifies the directory terraform will be invoked in,
// giving a clearer failure than terraform's own when the path is wrong.
func EnsureWorkingDir(deps util.IDependencies, dir string) error {
	info, err := deps.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, "terraform directory %s", dir)
	}
	if !info.IsDir() {
		return errors.Errorf("terraform directory %s is not a directory", dir)
	}
	return nil
}
