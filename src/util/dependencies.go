package util

import (
	"os"

	"github.com/spf13/afero"
)

//go:generate mockery --name IDependencies --inpackage
type IDependencies interface {
	ExecuteInDir(workingDir string, command string, args ...string) (stdout string, stderr string, exitCode int)
	Stat(fname string) (os.FileInfo, error)
	WriteFile(fname string, data []byte, perm os.FileMode) error
}

type Dependencies struct {
	fs afero.Fs
}

func (d *Dependencies) ExecuteInDir(workingDir string, command string, args ...string) (stdout string, stderr string, exitCode int) {
	return ExecuteInDir(workingDir, command, args...)
}

func (d *Dependencies) Stat(fname string) (os.FileInfo, error) {
	return d.fs.Stat(fname)
}

func (d *Dependencies) WriteFile(fname string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(d.fs, fname, data, perm)
}

func NewDependencies() IDependencies {
	return &Dependencies{fs: afero.NewOsFs()}
}
