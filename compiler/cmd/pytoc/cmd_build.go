package main

import (
	"flag"
	"path/filepath"
	"strings"

	"github.com/pytoc/pytoc/compiler/internal/build"
	"github.com/pytoc/pytoc/compiler/internal/cc"
	cgen "github.com/pytoc/pytoc/compiler/internal/codegen/c"
	"github.com/pytoc/pytoc/compiler/internal/diag"
	"github.com/pytoc/pytoc/compiler/internal/term"
	"github.com/pytoc/pytoc/compiler/internal/watch"
)

/* ---------- build (flags anywhere) ---------- */

type buildArgs struct {
	out     string
	ccBin   string // "" = don't compile, "auto" = detect
	strict  bool
	werr    bool // --Werror
	watch   bool
	verbose bool
	files   []string
}

func parseBuildArgs(argv []string) (buildArgs, error) {
	var a buildArgs
	i := 0
	for i < len(argv) {
		s := argv[i]
		if s == "--" {
			i++
			break
		}
		switch {
		case strings.HasPrefix(s, "--out="):
			a.out = s[len("--out="):]
			i++
			continue
		case s == "--out":
			if i+1 >= len(argv) {
				return a, flag.ErrHelp
			}
			a.out = argv[i+1]
			i += 2
			continue
		case strings.HasPrefix(s, "--cc="):
			a.ccBin = s[len("--cc="):]
			i++
			continue
		case s == "--cc":
			a.ccBin = "auto"
			i++
			continue
		case s == "--strict":
			a.strict = true
			i++
			continue
		case s == "--Werror" || s == "--werror":
			a.werr = true
			i++
			continue
		case s == "--watch":
			a.watch = true
			i++
			continue
		case s == "--verbose":
			a.verbose = true
			i++
			continue
		}
		if !strings.HasPrefix(s, "-") {
			a.files = append(a.files, s)
			i++
			continue
		}
		return a, flag.ErrHelp
	}
	for ; i < len(argv); i++ {
		if !strings.HasPrefix(argv[i], "-") {
			a.files = append(a.files, argv[i])
		}
	}
	if len(a.files) == 0 {
		return a, flag.ErrHelp
	}
	if a.out != "" && len(a.files) > 1 {
		return a, flag.ErrHelp
	}
	return a, nil
}

func cmdBuild(args []string) int {
	a, err := parseBuildArgs(args)
	if err != nil {
		term.Eprintln("usage: pytoc build [--out=path] [--cc[=bin]] [--strict] [--Werror] [--watch] [--verbose] <file.py>...")
		return 2
	}

	if a.watch {
		return buildWatch(a)
	}
	return buildOnce(a)
}

func buildOnce(a buildArgs) int {
	opts := cgen.Options{Mode: cgen.ModeLenient}
	if a.strict {
		opts.Mode = cgen.ModeStrict
	}

	exit := 0
	for _, item := range build.Batch(a.files, opts) {
		if !reportItem(a, item) {
			exit = 1
		}
	}
	return exit
}

// reportItem prints diagnostics for one input and writes its output on
// success. Returns false when the input failed.
func reportItem(a buildArgs, item build.BatchItem) bool {
	var warns, errs int
	if item.Result != nil {
		for _, d := range item.Result.Diags {
			if d.Severity == diag.SevNote && !a.verbose {
				continue
			}
			term.Eprintf("%s: %v\n", item.Path, d)
		}
		warns = countSeverity(item.Result.Diags, diag.SevWarning)
		errs = countSeverity(item.Result.Diags, diag.SevError)
	}

	if item.Err != nil {
		term.Eprintf("error: %v\n", item.Err)
		term.Eprintf("summary: %s: %d error(s), %d warning(s)\n", item.Path, maxInt(errs, 1), warns)
		return false
	}
	if a.werr && warns > 0 {
		term.Eprintf("summary: %s: warnings treated as errors (%d)\n", item.Path, warns)
		return false
	}

	outPath := build.OutputPath(item.Path, a.out)
	if err := build.WriteResult(item.Result, outPath); err != nil {
		term.Eprintf("error: %v\n", err)
		return false
	}
	term.Eprintf("wrote %s\n", outPath)

	if a.ccBin != "" {
		ccOpts := cc.Options{CSource: outPath}
		if a.ccBin != "auto" {
			ccOpts.CCBin = a.ccBin
		}
		if err := cc.Compile(ccOpts); err != nil {
			term.Eprintf("%v\n", err)
			return false
		}
		term.Eprintf("built %s\n", strings.TrimSuffix(outPath, filepath.Ext(outPath)))
	}
	term.Eprintf("summary: %s: %d error(s), %d warning(s)\n", item.Path, errs, warns)
	return true
}

// buildWatch runs one build, then rebuilds an input whenever it changes.
// Runs until interrupted.
func buildWatch(a buildArgs) int {
	buildOnce(a)

	w, err := watch.New()
	if err != nil {
		term.Eprintf("watch: %v\n", err)
		return 1
	}
	defer func() { _ = w.Close() }()

	// watch parent directories: editors replacing files drop per-file watches
	watched := map[string]string{} // cleaned abs path -> input path
	dirs := map[string]bool{}
	for _, f := range a.files {
		abs, err := filepath.Abs(f)
		if err != nil {
			term.Eprintf("watch %s: %v\n", f, err)
			return 1
		}
		watched[filepath.Clean(abs)] = f
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			term.Eprintf("watch %s: %v\n", d, err)
			return 1
		}
	}
	term.Eprintf("watching %d file(s); rebuild on change\n", len(watched))

	opts := a
	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return 0
			}
			input, mine := watched[filepath.Clean(ev.Path)]
			if !mine || !ev.Touched() {
				continue
			}
			term.Eprintf("changed: %s\n", input)
			opts.files = []string{input}
			buildOnce(opts)
		case err := <-w.Errors():
			term.Eprintf("watch: %v\n", err)
		}
	}
}

func countSeverity(ds []diag.Diagnostic, sev diag.Severity) int {
	n := 0
	for _, d := range ds {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
