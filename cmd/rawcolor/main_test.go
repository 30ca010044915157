package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--color=false"}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("rawcolor %s: %v\n%s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String()
}

func TestColorPack(t *testing.T) {
	got := run(t, "color", "pack", "0x33", "255", "204", "255")
	want := "0x33ffccff r=51 g=255 b=204 a=255 bytes=ff cc ff 33\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestColorUnpack(t *testing.T) {
	for _, arg := range []string{"0x33ffccff", "#33ffcc", "3fcf"} {
		got := run(t, "color", "unpack", arg)
		if !strings.HasPrefix(got, "0x33ffccff ") {
			t.Errorf("unpack %s: got %q", arg, got)
		}
	}
}

func TestColorRandom(t *testing.T) {
	a := run(t, "color", "random", "-n", "4", "--seed", "7")
	b := run(t, "color", "random", "-n", "4", "--seed", "7")
	if a != b {
		t.Fatalf("same seed gave different colors:\n%s\n%s", a, b)
	}
	lines := strings.Split(strings.TrimSpace(a), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 colors, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, " a=255 ") {
			t.Errorf("expected opaque color, got %q", line)
		}
	}
}

func TestFill(t *testing.T) {
	got := run(t, "fill", "high", "-n", "2", "-s", "3")
	want := "FILL HIGH (6 bytes)\nff\tff\tff\nff\tff\tff\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	got = run(t, "fill", "low", "-n", "1", "-s", "2")
	want = "FILL LOW (2 bytes)\n00\t00\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFillInvalid(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"fill", "sideways"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown fill mode")
	}
}

func TestHandle(t *testing.T) {
	got := run(t, "handle", "10", "20", "30", "255")
	want := "red=10\ngreen=20\nblue=30\nalpha=255\npacked=0x0a141eff\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNoise(t *testing.T) {
	t.Setenv("RAWCOLOR_SEED", "")
	t.Setenv("RAWCOLOR_INTENSITY", "")
	t.Setenv("RAWCOLOR_LOG_FILE", "")

	got := run(t, "noise", "--seed", "3", "--env-file", "")
	for _, want := range []string{
		"INPUT (27 bytes)\n33\t33\t33\t66\t66\t66\t99\t99\t99\n",
		"OUTPUT (27 bytes)\n",
		"computed size: 27\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	if again := run(t, "noise", "--seed", "3", "--env-file", ""); again != got {
		t.Errorf("same seed gave different output")
	}
}
