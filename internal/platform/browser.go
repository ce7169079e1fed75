package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSFreeBSD = "freebsd"
	OSOpenBSD = "openbsd"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	AMCommand      = "am"
)

// Command parameters
const (
	WindowsCmdFlag    = "/c"
	AndroidViewAction = "android.intent.action.VIEW"
)

// Linux browsers tried when xdg-open is missing
var (
	LinuxBrowsers = []string{"sensible-browser", "x-www-browser", "firefox", "chromium", "google-chrome"}
)

// ErrInvalidLink is returned for links that cannot be opened in a browser
var ErrInvalidLink = errors.New("invalid link")

// ValidateLink parses raw and accepts only absolute http(s) URLs with a host
func ValidateLink(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLink)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: URL must start with http:// or https://", ErrInvalidLink)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidLink)
	}

	return u, nil
}

// OpenURL opens the link in the system browser
func OpenURL(raw string) error {
	u, err := ValidateLink(raw)
	if err != nil {
		return err
	}

	cmd, err := browserCommand(detectOS(), u.String())
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", u.String(), err)
	}
	return nil
}

// browserCommand returns the command that opens link on goos
func browserCommand(goos, link string) (*exec.Cmd, error) {
	switch goos {
	case OSDarwin:
		return exec.Command(OpenCommand, link), nil
	case OSWindows:
		// The empty argument is the window title consumed by start
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", link), nil
	case OSAndroid:
		return exec.Command(AMCommand, StartCommand, "-a", AndroidViewAction, "-d", link), nil
	case OSLinux, OSFreeBSD, OSOpenBSD:
		if _, err := exec.LookPath(XDGOpenCommand); err == nil {
			return exec.Command(XDGOpenCommand, link), nil
		}
		for _, browser := range LinuxBrowsers {
			if _, err := exec.LookPath(browser); err == nil {
				return exec.Command(browser, link), nil
			}
		}
		return nil, fmt.Errorf("no suitable browser found")
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// detectOS returns runtime.GOOS, reporting android for Android builds that
// identify as linux
func detectOS() string {
	if runtime.GOOS == OSLinux && os.Getenv("ANDROID_DATA") != "" {
		return OSAndroid
	}
	return runtime.GOOS
}
