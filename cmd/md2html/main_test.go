package main

// Notes:
// - runMain: exit codes and output for every command. Builds run against
//   temporary directories passed by flag so no config file is involved.
// - Environment: tests inject Getenv/Environ, never the process environment.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

func testEnv(vars map[string]string, stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, &stdout, &stderr
}

// setupTestDir creates a temp directory with the given file structure.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage",
			args:         []string{"md2html"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: md2html"},
		},
		{
			name:         "version",
			args:         []string{"md2html", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"md2html dev"},
		},
		{
			name:         "help",
			args:         []string{"md2html", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: md2html", "Commands:"},
		},
		{
			name:         "help build",
			args:         []string{"md2html", "help", "build"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: md2html build", "--heading-ids"},
		},
		{
			name:         "build -h",
			args:         []string{"md2html", "build", "-h"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: md2html build"},
		},
		{
			name:         "unknown command",
			args:         []string{"md2html", "publish"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: publish"},
		},
		{
			name:         "unknown flag",
			args:         []string{"md2html", "build", "--colour"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid usage"},
		},
		{
			name:     "render without file",
			args:     []string{"md2html", "render"},
			wantCode: ExitUsage,
		},
		{
			name:         "render missing file",
			args:         []string{"md2html", "render", "missing.md"},
			wantCode:     ExitIO,
			wantInStderr: []string{"failed to read markdown file"},
		},
		{
			name:         "unknown highlight style",
			args:         []string{"md2html", "render", "--highlight", "nope-xyz", "-"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"render.highlight"},
		},
		{
			name:         "config defaults",
			args:         []string{"md2html", "config", "--defaults"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"content: content", "public: public"},
		},
		{
			name:         "missing config file",
			args:         []string{"md2html", "config", "--config", "no-such-config-xyz"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found", "hint:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil, "")
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Render - Single file rendering
// ---------------------------------------------------------------------------

func TestRunMain_Render(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"doc.md":   "# Hello\n\nSome *text*.",
		"notes.md": "no heading",
		"bad.md":   "a **b",
	})

	tests := []struct {
		name         string
		args         []string
		stdin        string
		wantCode     int
		wantStdout   string
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:       "fragment",
			args:       []string{"render", filepath.Join(dir, "doc.md")},
			wantStdout: "<div><h1>Hello</h1><p>Some <i>text</i>.</p></div>\n",
		},
		{
			name:       "stdin",
			args:       []string{"render", "-"},
			stdin:      "- a\n- b",
			wantStdout: "<div><ul><li><p>a</p></li><li><p>b</p></li></ul></div>\n",
		},
		{
			name:       "title",
			args:       []string{"render", "--title", filepath.Join(dir, "doc.md")},
			wantStdout: "Hello\n",
		},
		{
			name:         "missing title warns",
			args:         []string{"render", "--title", filepath.Join(dir, "notes.md")},
			wantStdout:   "\n",
			wantInStderr: []string{"no title heading"},
		},
		{
			name:       "heading ids",
			args:       []string{"render", "--heading-ids", filepath.Join(dir, "doc.md")},
			wantStdout: "<div><h1 id=\"hello\">Hello</h1><p>Some <i>text</i>.</p></div>\n",
		},
		{
			name:         "page",
			args:         []string{"render", "--page", filepath.Join(dir, "notes.md")},
			wantInStdout: []string{"<!DOCTYPE html>", "<title>notes</title>", "<p>no heading</p>"},
		},
		{
			name:         "page with inlined stylesheet",
			args:         []string{"render", "--page", "--inline-style", "--style", "minimal", filepath.Join(dir, "doc.md")},
			wantInStdout: []string{"<style>", "Georgia", "<title>Hello</title>"},
		},
		{
			name:         "syntax error",
			args:         []string{"render", filepath.Join(dir, "bad.md")},
			wantCode:     ExitMarkdown,
			wantInStderr: []string{"hint:"},
		},
		{
			name:         "empty input",
			args:         []string{"render", "-"},
			wantCode:     ExitMarkdown,
			wantInStderr: []string{"empty file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil, tt.stdin)
			code := runMain(append([]string{"md2html"}, tt.args...), env)

			if code != tt.wantCode {
				t.Fatalf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Build - Site generation
// ---------------------------------------------------------------------------

func TestRunMain_Build(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"content/index.md":     "# Home\n\n[About](about.md)",
		"content/about.md":     "# About",
		"static/css/extra.css": "p {}",
	})
	public := filepath.Join(dir, "public")

	env, stdout, stderr := testEnv(nil, "")
	code := runMain([]string{
		"md2html", "build",
		"--content", filepath.Join(dir, "content"),
		"--static", filepath.Join(dir, "static"),
		"-o", public,
		"--highlight", "github",
		"-w", "2",
	}, env)
	if code != ExitSuccess {
		t.Fatalf("build = %d, want %d\nstderr: %s", code, ExitSuccess, stderr.String())
	}

	for _, want := range []string{"2 written", "0 failed", "Copied 1 static file"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("stdout should contain %q, got %q", want, stdout.String())
		}
	}

	index, err := os.ReadFile(filepath.Join(public, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `href="about.html"`) {
		t.Errorf("index.html link not rewritten:\n%s", index)
	}
	css, err := os.ReadFile(filepath.Join(public, "style.css"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(css), ".chroma") {
		t.Error("style.css lacks highlight rules")
	}
}

func TestRunMain_BuildFailures(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"content/ok.md":  "# Fine",
		"content/bad.md": "`open",
	})

	env, stdout, stderr := testEnv(nil, "")
	code := runMain([]string{
		"md2html", "build", "-q",
		"--content", filepath.Join(dir, "content"),
		"-o", filepath.Join(dir, "public"),
	}, env)

	if code != ExitMarkdown {
		t.Errorf("build = %d, want %d\nstderr: %s", code, ExitMarkdown, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet build printed %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "bad.md") {
		t.Errorf("stderr should name the failed page, got %q", stderr.String())
	}
}

func TestRunMain_BuildMissingContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env, _, stderr := testEnv(nil, "")
	code := runMain([]string{
		"md2html", "build",
		"--content", filepath.Join(dir, "missing"),
		"-o", filepath.Join(dir, "public"),
	}, env)
	if code != ExitIO {
		t.Errorf("build = %d, want %d\nstderr: %s", code, ExitIO, stderr.String())
	}
}

func TestRunMain_BuildFromConfig(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"content/a.md": "# A",
	})
	cfgPath := filepath.Join(dir, "site.yaml")
	cfgData := "content: " + filepath.Join(dir, "content") + "\npublic: " + filepath.Join(dir, "out") + "\nrender:\n  headingIDs: true\n"
	if err := os.WriteFile(cfgPath, []byte(cfgData), 0o644); err != nil {
		t.Fatal(err)
	}

	env, _, stderr := testEnv(map[string]string{"MD2HTML_CONFIG": cfgPath}, "")
	if code := runMain([]string{"md2html", "build"}, env); code != ExitSuccess {
		t.Fatalf("build = %d, want %d\nstderr: %s", code, ExitSuccess, stderr.String())
	}

	page, err := os.ReadFile(filepath.Join(dir, "out", "a.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), `<h1 id="a">A</h1>`) {
		t.Errorf("a.html lacks the heading id:\n%s", page)
	}
}
