package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dtroode/repairctl/internal/model"
	"github.com/dtroode/repairctl/internal/service"
)

// reported replaces failures the services have already shown to the user.
func reported(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrInvalidForm),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return errReported
	}
}

// secret returns value, or reads it from stdin when it is empty. A terminal
// is read without echo; piped input is read up to the first newline.
func secret(cmd *cobra.Command, value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: ", prompt)

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(prompt), err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(prompt), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return id, nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func ago(ts model.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return humanize.RelTime(ts.Time, time.Now(), "ago", "from now")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
