// Package cli is the terminal front end. It owns the two command trees —
// one for visitors, one for signed-in users — and picks the active tree
// from the session state, the way the mobile app's navigator switches
// between its auth and main stacks.
package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"

	"github.com/student-support/supportctl/internal/core/service"
)

// Tree placement of a command.
const (
	treeAnon   = "anon"   // only while signed out
	treeAuthed = "authed" // only while signed in
)

type command struct {
	name    string
	summary string
	tree    string
	run     func(ctx context.Context, args []string) error
}

// App wires the services to the terminal.
type App struct {
	session   *service.Session
	auth      *service.Auth
	community *service.Community
	assistant *service.Assistant
	log       zerolog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	commands map[string]command
}

// New assembles the App. in/out/errOut are injectable for tests.
func New(session *service.Session, auth *service.Auth, community *service.Community, assistant *service.Assistant, log zerolog.Logger, in io.Reader, out, errOut io.Writer) *App {
	a := &App{
		session:   session,
		auth:      auth,
		community: community,
		assistant: assistant,
		log:       log,
		in:        in,
		out:       out,
		errOut:    errOut,
	}
	a.commands = map[string]command{
		"login":     {"login", "sign in with email and password", treeAnon, a.cmdLogin},
		"register":  {"register", "create an account and sign in", treeAnon, a.cmdRegister},
		"logout":    {"logout", "sign out and forget the stored session", treeAuthed, a.cmdLogout},
		"whoami":    {"whoami", "show the signed-in profile", treeAuthed, a.cmdWhoami},
		"events":    {"events", "list and manage community events", treeAuthed, a.cmdEvents},
		"posts":     {"posts", "list and manage community posts", treeAuthed, a.cmdPosts},
		"chat":      {"chat", "talk to the wellness assistant", treeAuthed, a.cmdChat},
		"resources": {"resources", "browse academic and financial resources", treeAuthed, a.cmdResources},
		"admin":     {"admin", "admin panel (admin accounts only)", treeAuthed, a.cmdAdmin},
	}
	return a
}

// Run executes one invocation and returns the process exit code. The
// persisted session is restored before any command runs; which tree is
// active then depends entirely on whether a token was found. A command
// from the inactive tree is refused, never silently rerouted.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}
	name, rest := args[0], args[1:]
	if name == "help" || name == "-h" || name == "--help" {
		a.usage()
		return 0
	}

	a.session.Load(ctx)

	cmd, ok := a.commands[name]
	if !ok {
		fmt.Fprintf(a.errOut, "supportctl: unknown command %q\n\n", name)
		a.usage()
		return 2
	}

	switch {
	case cmd.tree == treeAuthed && !a.session.Authenticated():
		fmt.Fprintf(a.errOut, "supportctl: %q needs a signed-in session; run \"supportctl login\" first\n", name)
		return 1
	case cmd.tree == treeAnon && a.session.Authenticated():
		fmt.Fprintf(a.errOut, "supportctl: already signed in as %s; run \"supportctl logout\" first\n", a.session.Current().Email)
		return 1
	}

	if err := cmd.run(ctx, rest); err != nil {
		fmt.Fprintf(a.errOut, "supportctl: %s\n", renderError(err))
		a.log.Debug().Err(err).Str("command", name).Msg("command failed")
		return 1
	}
	return 0
}

func (a *App) usage() {
	fmt.Fprintln(a.errOut, "usage: supportctl <command> [flags]")
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "signed out:")
	a.usageTree(treeAnon)
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "signed in:")
	a.usageTree(treeAuthed)
}

func (a *App) usageTree(tree string) {
	names := make([]string, 0, len(a.commands))
	for name, cmd := range a.commands {
		if cmd.tree == tree {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %-10s %s\n", name, a.commands[name].summary)
	}
}
