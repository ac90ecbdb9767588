// Package cc invokes a system C compiler on a generated translation unit.
// Entirely optional: the transpiler's contract ends at the .c file.
package cc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

type Options struct {
	// CSource is the path to the generated C file.
	CSource string

	// Out is the desired output executable path. If empty, derived from
	// CSource by dropping the extension (plus .exe on Windows).
	Out string

	// CCBin is an optional explicit compiler (e.g. "clang", "gcc", "cl").
	// If empty, we detect: clang > gcc > cc (clang > cl > gcc on Windows).
	CCBin string

	// ExtraArgs lets callers pass additional flags; kept minimal by default.
	ExtraArgs []string

	// DryRun validates options and picks a compiler without running it.
	DryRun bool
}

// Compile compiles the generated C file into an executable. The generated
// code only touches the C standard library, so no include paths or runtime
// objects are needed.
func Compile(opts Options) error {
	if opts.CSource == "" {
		return errors.New("cc: CSource must be set")
	}
	srcAbs, err := filepath.Abs(opts.CSource)
	if err != nil {
		return fmt.Errorf("cc: resolve CSource: %w", err)
	}
	if _, err := os.Stat(srcAbs); err != nil {
		return fmt.Errorf("cc: source does not exist: %s", srcAbs)
	}

	out := opts.Out
	if out == "" {
		out = strings.TrimSuffix(srcAbs, filepath.Ext(srcAbs))
	}
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(out), ".exe") {
		out += ".exe"
	}
	outAbs, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("cc: resolve Out: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outAbs), 0o755); err != nil {
		return fmt.Errorf("cc: create out dir: %w", err)
	}

	bin := opts.CCBin
	if bin == "" {
		bin, err = pickCompiler()
		if err != nil {
			return err
		}
	}

	args := constructArgs(bin, srcAbs, outAbs, opts.ExtraArgs)
	if opts.DryRun {
		return nil
	}

	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cc: compilation failed: %w", err)
	}
	return nil
}

func pickCompiler() (string, error) {
	// env override
	if v := os.Getenv("PYTOC_CC"); v != "" {
		if _, err := exec.LookPath(v); err == nil {
			return v, nil
		}
	}

	if runtime.GOOS == "windows" {
		if hasCmd("clang") {
			return "clang", nil
		}
		if hasCmd("cl") {
			return "cl", nil
		}
		if hasCmd("gcc") {
			return "gcc", nil
		}
		return "", errors.New("cc: no compiler found (tried clang, cl, gcc)")
	}

	if hasCmd("clang") {
		return "clang", nil
	}
	if hasCmd("gcc") {
		return "gcc", nil
	}
	// some systems alias cc -> clang or gcc
	if hasCmd("cc") {
		return "cc", nil
	}
	return "", errors.New("cc: no compiler found (need clang or gcc)")
}

func hasCmd(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func constructArgs(bin, srcAbs, outAbs string, extra []string) []string {
	if strings.EqualFold(bin, "cl") {
		// cl /nologo src /Fe:out.exe
		args := []string{"/nologo", srcAbs, "/Fe:" + outAbs}
		return append(args, extra...)
	}
	args := []string{srcAbs, "-o", outAbs}
	return append(args, extra...)
}
