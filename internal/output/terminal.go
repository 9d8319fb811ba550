package output

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ClearScreen clears the terminal screen and moves cursor to top-left
func ClearScreen(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[2J\033[H")
}

// HideCursor hides the terminal cursor
func HideCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor
func ShowCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25h")
}

// Redraw clears the screen, renders a frame and appends the watch footer
func Redraw(w io.Writer, c *Colors, interval time.Duration, at time.Time, render func(io.Writer)) {
	ClearScreen(w)
	render(w)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, WatchFooter(c, interval, at))
}

// WatchFooter returns the refresh hint shown below a watched frame
func WatchFooter(c *Colors, interval time.Duration, at time.Time) string {
	if c == nil {
		c = NewColors(ColorNever)
	}
	return c.Muted("Last update %s · refreshing every %s · Ctrl+C to quit",
		at.Format("15:04:05"), interval)
}

// SetupSignalHandler returns a channel that receives interrupt signals
func SetupSignalHandler() chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	return sigChan
}
