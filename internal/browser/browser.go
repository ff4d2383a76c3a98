package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Commander abstracts command execution so tests can intercept it
type Commander interface {
	Start(name string, args ...string) error
}

// RealCommander runs commands via os/exec
type RealCommander struct{}

func (RealCommander) Start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

var defaultCommander Commander = RealCommander{}

// Open launches the default browser at the given URL
func Open(url string) error {
	return open(url, defaultCommander, runtime.GOOS)
}

func open(url string, commander Commander, goos string) error {
	switch goos {
	case "linux":
		return commander.Start("xdg-open", url)
	case "darwin":
		return commander.Start("open", url)
	case "windows":
		return commander.Start("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", goos)
	}
}
