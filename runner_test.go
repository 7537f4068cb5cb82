package rcd

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"
)

func execRunnerForTest() *ExecRunner {
	return &ExecRunner{Stdout: io.Discard, Stderr: io.Discard}
}

func TestExecRunnerExitCode(t *testing.T) {
	ctx := context.Background()
	r := execRunnerForTest()

	tests := []struct {
		name string
		argv []string
		want int
	}{
		{"success", []string{"sh", "-c", "exit 0"}, 0},
		{"failure", []string{"sh", "-c", "exit 7"}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := r.Run(ctx, tt.argv, nil)
			if err != nil {
				t.Fatal(err)
			}
			if code != tt.want {
				t.Errorf("exit = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestExecRunnerEnv(t *testing.T) {
	r := execRunnerForTest()

	code, err := r.Run(context.Background(),
		[]string{"sh", "-c", `test "$LANG" = fr_FR.UTF-8`},
		[]string{"LANG=fr_FR.UTF-8"})
	if err != nil {
		t.Fatal(err)
	}
	if code != 0 {
		t.Errorf("exit = %d, want 0 (LANG not visible to child)", code)
	}
}

func TestExecRunnerEmptyCommand(t *testing.T) {
	r := execRunnerForTest()

	code, err := r.Run(context.Background(), nil, nil)
	if !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("err = %v, want ErrEmptyCommand", err)
	}
	if code != ExitFailure {
		t.Errorf("exit = %d, want %d", code, ExitFailure)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := execRunnerForTest()

	code, err := r.Run(context.Background(), []string{"/nonexistent/ioc", "start", "--rc"}, nil)
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if code != ExitFailure {
		t.Errorf("exit = %d, want %d", code, ExitFailure)
	}
}

func TestExecRunnerContextCancel(t *testing.T) {
	r := execRunnerForTest()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := r.Run(ctx, []string{"sh", "-c", "sleep 10"}, nil)
	if err == nil {
		t.Fatal("expected error for canceled command")
	}
}
