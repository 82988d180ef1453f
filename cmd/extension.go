package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Environment variables passed to extensions. They are also read by
// LoadConfig, so an extension built on this package sees the same storage.
const (
	EnvDriver    = "INV_DRIVER"
	EnvDSN       = "INV_DSN"
	EnvOutputDir = "INV_OUTPUT_DIR"
	EnvVerbose   = "INV_VERBOSE"
)

// ExtensionEnv returns the environment of an extension: the current one plus
// the global flags.
func ExtensionEnv() []string {
	return append(os.Environ(),
		EnvDriver+"="+*driver,
		EnvDSN+"="+*dsn,
		EnvOutputDir+"="+config.OutputDir,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)
}

// RunExtension attempts to find and execute an external inv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "inv-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logrus.WithError(err).Debugf("extension %q not found", name)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = ExtensionEnv()

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
