package util

import (
	bytes2 "bytes"
	"os/exec"

	"github.com/alessio/shellescape"
	log "github.com/sirupsen/logrus"
)

func getExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch value := err.(type) {
	case *exec.ExitError:
		return value.ExitCode()
	default:
		return -1
	}
}

func getErrorStr(err error, stderr *bytes2.Buffer) string {
	b := stderr.Bytes()
	if len(b) > 0 {
		return string(b)
	} else if err != nil {
		return err.Error()
	}
	return ""
}

// ExecuteInDir runs command with args in workingDir and captures both output
// streams. An empty workingDir leaves the command in the current directory.
func ExecuteInDir(workingDir string, command string, args ...string) (stdout string, stderr string, exitCode int) {
	cmd := exec.Command(command, args...)
	cmd.Dir = workingDir
	var stdoutBytes, stderrBytes bytes2.Buffer
	cmd.Stdout = &stdoutBytes
	cmd.Stderr = &stderrBytes
	log.Debugf("Executing %s in %s", shellescape.QuoteCommand(append([]string{command}, args...)), workingDir)
	err := cmd.Run()
	return stdoutBytes.String(), getErrorStr(err, &stderrBytes), getExitCode(err)
}

func Execute(command string, args ...string) (stdout string, stderr string, exitCode int) {
	return ExecuteInDir("", command, args...)
}
