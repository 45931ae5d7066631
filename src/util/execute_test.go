package util

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExecuteInDir", func() {
	It("captures stdout on success", func() {
		stdout, stderr, exitCode := ExecuteInDir("", "sh", "-c", "echo hello")
		Expect(exitCode).To(Equal(0))
		Expect(stdout).To(Equal("hello\n"))
		Expect(stderr).To(BeEmpty())
	})

	It("runs in the requested directory", func() {
		dir, err := os.MkdirTemp("", "execute-test")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(dir)
		Expect(os.WriteFile(filepath.Join(dir, "marker"), []byte("present"), 0644)).To(Succeed())

		stdout, _, exitCode := ExecuteInDir(dir, "cat", "marker")
		Expect(exitCode).To(Equal(0))
		Expect(stdout).To(Equal("present"))
	})

	It("reports the exit code and stderr of a failing command", func() {
		_, stderr, exitCode := ExecuteInDir("", "sh", "-c", "echo oops >&2; exit 3")
		Expect(exitCode).To(Equal(3))
		Expect(stderr).To(ContainSubstring("oops"))
	})

	It("reports -1 when the binary does not exist", func() {
		_, stderr, exitCode := ExecuteInDir("", "definitely-not-a-real-binary")
		Expect(exitCode).To(Equal(-1))
		Expect(stderr).ToNot(BeEmpty())
	})
})
