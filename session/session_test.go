package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap/zaptest"

	"ucss/config"
	"ucss/css"
	"ucss/prefs"
	"ucss/refresh"
	"ucss/state"
	"ucss/style"
)

// syncBuffer is written by the watcher goroutine while test reads it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testContext(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t)
	env.Cfg = &config.Config{
		Version: 1,
		Styling: config.StylingConfig{Extension: ".ucss", Root: "Canvas"},
		Watch:   config.WatchConfig{Debounce: 20 * time.Millisecond},
		Prefs:   config.PrefsConfig{Path: filepath.Join(t.TempDir(), "prefs.db")},
	}
	t.Cleanup(func() {
		if err := env.ClosePrefs(); err != nil {
			t.Errorf("ClosePrefs() error = %v", err)
		}
	})
	return ctx, env
}

func testApp(out *syncBuffer) *cli.Command {
	return &cli.Command{
		Name:   "ucss",
		Writer: out,
		Commands: []*cli.Command{
			{Name: "apply", Action: Apply, Flags: []cli.Flag{&cli.StringFlag{Name: "scene"}}},
			{Name: "check", Action: Check, Flags: []cli.Flag{&cli.BoolFlag{Name: "quiet"}, &cli.StringFlag{Name: "selector"}}},
			{Name: "use", Action: Use, Flags: []cli.Flag{&cli.BoolFlag{Name: "clear"}, &cli.BoolFlag{Name: "all"}}},
			{Name: "watch", Action: Watch, Flags: []cli.Flag{&cli.StringFlag{Name: "scene"}, &cli.DurationFlag{Name: "debounce"}}},
			{Name: "modifiers", Action: Modifiers},
		},
	}
}

func run(ctx context.Context, args ...string) (string, error) {
	out := &syncBuffer{}
	err := testApp(out).Run(ctx, append([]string{"ucss"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testScene = `name: Canvas
children:
  - name: Title
    components:
      - type: Text
        text: Hello
      - type: ClassList
        classes: big
  - name: Logo
    components:
      - type: Image
        sprite: logo
`

func TestApply_BuiltIn(t *testing.T) {
	ctx, _ := testContext(t)

	out, err := run(ctx, "apply")
	if err != nil {
		t.Fatalf("apply error = %v", err)
	}
	for _, want := range []string{
		"Canvas\n",
		"#Text size=24 style=bold align=middle-center",
		"applied: Title\n",
		"applied: .small, .muted\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestApply_FileAndScene(t *testing.T) {
	ctx, _ := testContext(t)
	dir := t.TempDir()
	scene := writeFile(t, dir, "scene.yaml", testScene)
	sheet := writeFile(t, dir, "main.ucss", `
big = 32;
.big { font-size: big; text: "Styled"; }
#Image { color: red; }
`)

	out, err := run(ctx, "apply", "--scene", scene, sheet)
	if err != nil {
		t.Fatalf("apply error = %v", err)
	}
	want := `Canvas
  Title
    #Text size=32 style=normal align=upper-left spacing=1 rich=true color=#000000ff
      text: "Styled"
    #ClassList "big"
    applied: .big
  Logo
    #Image sprite="logo" color=#ff0000ff
    applied: #Image
`
	if out != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestApply_UsesPreference(t *testing.T) {
	ctx, env := testContext(t)
	dir := t.TempDir()
	env.Cfg.Styling.Scene = writeFile(t, dir, "scene.yaml", testScene)
	sheet := writeFile(t, dir, "main.ucss", `Logo { color: blue; }`)

	if _, err := run(ctx, "use", sheet); err != nil {
		t.Fatalf("use error = %v", err)
	}
	out, err := run(ctx, "apply")
	if err != nil {
		t.Fatalf("apply error = %v", err)
	}
	if !strings.Contains(out, "color=#0000ffff") {
		t.Errorf("remembered stylesheet was not applied:\n%s", out)
	}
}

func TestApply_Errors(t *testing.T) {
	ctx, env := testContext(t)
	dir := t.TempDir()
	scene := writeFile(t, dir, "scene.yaml", testScene)

	broken := writeFile(t, dir, "broken.ucss", "#Foo { color }")
	_, err := run(ctx, "apply", "--scene", scene, broken)
	var pe *css.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected parse error, got %v", err)
	}

	_, err = run(ctx, "apply", "--scene", filepath.Join(dir, "scene.txt"))
	if err == nil {
		t.Error("expected error for unknown scene format")
	}

	env.Cfg.Styling.Root = "Missing"
	_, err = run(ctx, "apply", "--scene", scene)
	if !errors.Is(err, style.ErrNoRoot) {
		t.Errorf("expected ErrNoRoot, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	ctx, _ := testContext(t)
	dir := t.TempDir()
	sheet := writeFile(t, dir, "main.ucss", "gap=4;Title,.big{padding:gap}")

	out, err := run(ctx, "check", sheet)
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	want := `gap = 4;

Title {
  padding: 4;
}

.big {
  padding: 4;
}
`
	if out != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out, want)
	}

	if out, err = run(ctx, "check", "--quiet", sheet); err != nil || out != "" {
		t.Errorf("quiet check = %q, %v", out, err)
	}

	if _, err := run(ctx, "check"); err == nil {
		t.Error("expected error without stylesheet")
	}

	sheet = writeFile(t, dir, "dups.ucss", "Title { font-size: 12; }\n.big { color: 1; }\nTitle { color: 0, 0, 1; }")
	out, err = run(ctx, "check", "--selector", " Title ", sheet)
	if err != nil {
		t.Fatalf("check --selector error = %v", err)
	}
	want = `Title {
  font-size: 12;
}

Title {
  color: 0, 0, 1;
}
`
	if out != want {
		t.Errorf("unexpected selected output:\n%s\nwant:\n%s", out, want)
	}
	if out, err = run(ctx, "check", "--selector", "Missing", sheet); err != nil || out != "" {
		t.Errorf("check with unknown selector = %q, %v", out, err)
	}
	if _, err = run(ctx, "check", "--selector", "A, B", sheet); err == nil {
		t.Error("expected error for selector list")
	}

	broken := writeFile(t, dir, "broken.ucss", "Title {\n  color: ;\n}")
	_, err = run(ctx, "check", broken)
	var pe *css.ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("expected parse error on line 2, got %v", err)
	}
}

func TestUse(t *testing.T) {
	ctx, env := testContext(t)
	dir := t.TempDir()
	sheet := writeFile(t, dir, "main.ucss", "* {}")

	if out, err := run(ctx, "use"); err != nil || out != "" {
		t.Fatalf("use without selection = %q, %v", out, err)
	}
	if _, err := run(ctx, "use", sheet); err != nil {
		t.Fatalf("use error = %v", err)
	}
	out, err := run(ctx, "use")
	if err != nil {
		t.Fatalf("use error = %v", err)
	}
	if strings.TrimSpace(out) != sheet {
		t.Errorf("current stylesheet = %q, want %q", strings.TrimSpace(out), sheet)
	}

	// selection survives reopening preferences
	if err := env.ClosePrefs(); err != nil {
		t.Fatal(err)
	}
	if out, _ := run(ctx, "use"); strings.TrimSpace(out) != sheet {
		t.Errorf("selection was not persisted, got %q", out)
	}

	out, err = run(ctx, "use", "--all")
	if err != nil {
		t.Fatalf("use --all error = %v", err)
	}
	if !strings.HasPrefix(out, prefs.CurrentStylesheetKey+"\t"+sheet+"\t") {
		t.Errorf("unexpected preferences listing %q", out)
	}

	if _, err := run(ctx, "use", filepath.Join(dir, "absent.ucss")); err == nil {
		t.Error("expected error for missing stylesheet")
	}
	if _, err := run(ctx, "use", dir); err == nil {
		t.Error("expected error for directory")
	}

	if _, err := run(ctx, "use", "--clear"); err != nil {
		t.Fatalf("use --clear error = %v", err)
	}
	if out, _ := run(ctx, "use"); out != "" {
		t.Errorf("expected selection to be cleared, got %q", out)
	}
}

func TestModifiers(t *testing.T) {
	ctx, _ := testContext(t)

	out, err := run(ctx, "modifiers")
	if err != nil {
		t.Fatalf("modifiers error = %v", err)
	}
	for _, want := range []string{
		"color\n  color (array) #Graphic\n",
		"  font-size (scalar) #Text\n",
		"  outline-distance (array) #Outline\n",
		"  overflow (scalar) #ScrollRect\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "color\n") > strings.Index(out, "text\n") {
		t.Errorf("sets are expected in natural order:\n%s", out)
	}
}

func TestWatch(t *testing.T) {
	ctx, env := testContext(t)
	dir := t.TempDir()
	env.Cfg.Styling.Scene = writeFile(t, dir, "scene.yaml", testScene)
	sheet := writeFile(t, dir, "main.ucss", "Title { font-size: 20; }")
	env.Cfg.Styling.Stylesheet = sheet

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- testApp(out).Run(ctx, []string{"ucss", "watch", "--debounce", "10ms"})
	}()

	waitFor := func(want string) {
		t.Helper()
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if strings.Contains(out.String(), want) {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
		t.Fatalf("timed out waiting for %q, output:\n%s", want, out.String())
	}

	waitFor("<- Title (line 1)")
	// give watcher time to start following the directory
	time.Sleep(100 * time.Millisecond)
	writeFile(t, dir, "main.ucss", "\n.big { font-size: 40; }")
	waitFor("<- .big (line 2)")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch_NoStylesheet(t *testing.T) {
	ctx, _ := testContext(t)

	_, err := run(ctx, "watch")
	if !errors.Is(err, refresh.ErrNoStylesheet) {
		t.Errorf("expected ErrNoStylesheet, got %v", err)
	}
}
