// Package terminal renders user-facing notifications and navigation for the CLI.
package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/dtroode/repairctl/internal/guard"
	"github.com/dtroode/repairctl/internal/model"
)

var (
	_ model.Notifier  = (*Notifier)(nil)
	_ model.Navigator = (*Navigator)(nil)
)

// Notifier prints toast messages, one per line.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Success(msg string) { n.print("✔", msg) }
func (n *Notifier) Info(msg string)    { n.print("ℹ", msg) }
func (n *Notifier) Error(msg string)   { n.print("✖", msg) }

func (n *Notifier) print(icon, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s %s\n", icon, msg)
}

// hints tells the user which command shows a route.
var hints = map[string]string{
	guard.PathLogin:          "repairctl login",
	guard.PathDashboard:      "repairctl request list",
	guard.PathShopDashboard:  "repairctl request list",
	guard.PathAdminDashboard: "repairctl admin dashboard",
}

// Navigator records the last route the application moved to and prints a
// hint for reaching it from the command line.
type Navigator struct {
	mu   sync.Mutex
	out  io.Writer
	last string
}

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

func (n *Navigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.last = path
	if hint, ok := hints[path]; ok {
		fmt.Fprintf(n.out, "→ run `%s` to continue\n", hint)
	}
}

// Last returns the most recent navigation target, or "" if there was none.
func (n *Navigator) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}
