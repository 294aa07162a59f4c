package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) LoginProvider(ctx context.Context) error {
	f.calls = append(f.calls, "login-provider")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Session(ctx context.Context) error {
	f.calls = append(f.calls, "session")
	return nil
}
func (f *fakeExec) Ping(ctx context.Context) error {
	f.calls = append(f.calls, "ping")
	return nil
}

func runLines(t *testing.T, f *fakeExec, input string) []string {
	t.Helper()

	var output []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				output = append(output, s)
			}
		}
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return output
}

func TestREPL_DispatchesCommands(t *testing.T) {
	f := &fakeExec{}
	runLines(t, f, "register\nlogin\nwhoami\nsession\nping\nlogout\nexit\n")

	want := []string{"register", "login", "whoami", "session", "ping", "logout"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls: %v", f.calls)
	}
	for i, c := range want {
		if f.calls[i] != c {
			t.Fatalf("call %d: got %q want %q", i, f.calls[i], c)
		}
	}
}

func TestREPL_ProviderLogin(t *testing.T) {
	f := &fakeExec{}
	runLines(t, f, "login-provider\nquit\n")

	if len(f.calls) != 1 || f.calls[0] != "login-provider" {
		t.Fatalf("calls: %v", f.calls)
	}
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	f := &fakeExec{}
	out := runLines(t, f, "frobnicate\nexit\n")

	found := false
	for _, line := range out {
		if strings.Contains(line, "Unknown command") {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown command not reported: %v", out)
	}
	if len(f.calls) != 0 {
		t.Fatalf("no handler should run: %v", f.calls)
	}
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	f := &fakeExec{}
	out := runLines(t, f, "help\nexit\n")
	if len(out) == 0 || !strings.Contains(out[1], "register") {
		t.Fatalf("signed-out help should offer register: %v", out)
	}

	f2 := &fakeExec{loggedIn: true}
	out2 := runLines(t, f2, "help\nexit\n")
	if len(out2) == 0 || !strings.Contains(out2[1], "logout") {
		t.Fatalf("signed-in help should offer logout: %v", out2)
	}
}

func TestREPL_EmptyLineAndEOF(t *testing.T) {
	f := &fakeExec{}
	runLines(t, f, "\n\n")
	if len(f.calls) != 0 {
		t.Fatalf("empty input must not dispatch: %v", f.calls)
	}
}
