// Package opener shows a directory in the platform file browser.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Runner starts name with args without waiting for it to exit.
type Runner func(name string, args ...string) error

type Opener struct {
	goos string
	run  Runner
}

func New() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		run:  startCommand,
	}
}

func NewWithRunner(goos string, run Runner) *Opener {
	return &Opener{
		goos: goos,
		run:  run,
	}
}

func (o *Opener) Open(dir string) error {
	name, args := command(o.goos, dir)
	if err := o.run(name, args...); err != nil {
		return fmt.Errorf("%s %s > %w", name, dir, err)
	}
	return nil
}

func command(goos string, dir string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{dir}
	case "windows":
		return "explorer", []string{dir}
	default:
		return "xdg-open", []string{dir}
	}
}

func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmd.Start > %w", err)
	}
	return cmd.Process.Release()
}
