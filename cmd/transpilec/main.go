package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/benzoXdev/transpilec/internal/transpile"
)

var (
	flagRun      bool
	flagOutDir   string
	flagCompiler string
	flagStd      string
	flagRegistry string
	flagWatch    bool
	flagLog      string
	flagReport   bool
)

// runExitOverride carries the target program's exit code (set by runRoot's
// non-watch --run branch) out to main, so os.Exit is only ever called after
// runRoot has returned and its deferred logger sync has already run.
var runExitOverride *int

func main() {
	root := newRootCmd()
	root.SilenceErrors = true
	root.SilenceUsage = true
	if err := root.Execute(); err != nil {
		printRunError(os.Stderr, err)
		os.Exit(transpile.ExitCode(err))
	}
	if runExitOverride != nil {
		os.Exit(*runExitOverride)
	}
}

// printRunError writes err's user-facing report to w. A *ParseError prints
// as its own bare "Line N: <message>" (per SPEC_FULL.md §7 and the tab-error
// scenario in §8); every other error is prefixed with "Error: ". Either kind
// is followed by a "Hint: ..." line when ErrorHint recognizes the failure.
func printRunError(w io.Writer, err error) {
	var perr *transpile.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintln(w, transpile.Err("%s", perr.Error()))
	} else {
		fmt.Fprintln(w, transpile.Err("Error: %v", err))
	}
	if hint := transpile.ErrorHint(err); hint != "" {
		fmt.Fprintln(w, transpile.Hint("Hint: %s", hint))
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transpilec INPUT_PATH",
		Short:   "Translate an indentation-based source script into a C++ program.",
		Version: transpile.Version(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("Input file not found.")
			}
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}
			return nil
		},
		RunE: runRoot,
	}
	cmd.Flags().BoolVar(&flagRun, "run", false, "After a successful build, execute the produced binary and forward its exit code.")
	cmd.Flags().StringVar(&flagOutDir, "outdir", "build", "Destination directory for emitted source and executable.")
	cmd.Flags().StringVar(&flagCompiler, "compiler", "g++", "Target C++ compiler executable.")
	cmd.Flags().StringVar(&flagStd, "std", "c++17", "-std= value passed to the compiler.")
	cmd.Flags().StringVar(&flagRegistry, "registry", "", "Optional TOML file extending the module registry.")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Watch the input file and rebuild automatically on changes.")
	cmd.Flags().StringVar(&flagLog, "log", "", "Write structured debug logs to this file (disabled by default).")
	cmd.Flags().BoolVar(&flagReport, "report", false, "Print a transpile report after a successful build.")
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("Input file not found.")
	}

	registry, err := buildRegistry(flagRegistry)
	if err != nil {
		return err
	}

	log, sync, err := transpile.NewLogger(flagLog)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer sync()

	if err := os.MkdirAll(flagOutDir, 0o755); err != nil {
		return fmt.Errorf("creating outdir: %w", err)
	}

	fmt.Fprintln(os.Stderr, transpile.Banner())

	repoRoot, err := os.Getwd()
	if err != nil {
		repoRoot = "."
	}
	buildOpts := transpile.BuildOptions{Compiler: flagCompiler, Std: flagStd, RepoRoot: repoRoot}

	doBuild := func() (string, error) {
		return build(inputPath, flagOutDir, registry, buildOpts, log, flagReport)
	}

	if flagWatch {
		if _, err := doBuild(); err != nil {
			return err
		}
		if flagRun {
			runOnce(inputPath, flagOutDir)
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return transpile.Watch(ctx, inputPath, log, func() error {
			execPath, err := doBuild()
			if err != nil {
				return err
			}
			if flagRun {
				runOnce(inputPath, flagOutDir)
				_ = execPath
			}
			return nil
		})
	}

	execPath, err := doBuild()
	if err != nil {
		return err
	}
	if flagRun {
		code, err := transpile.RunBinary(execPath, nil)
		if err != nil {
			return err
		}
		runExitOverride = &code
	}
	return nil
}

func runOnce(inputPath, outDir string) {
	_, execPath := transpile.ArtifactPaths(inputPath, outDir)
	code, err := transpile.RunBinary(execPath, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, transpile.Err("Error running binary: %v", err))
		return
	}
	fmt.Fprintln(os.Stderr, transpile.Stage("run exited with code %d", code))
}

func buildRegistry(registryPath string) (transpile.ModuleRegistry, error) {
	base := transpile.BuiltinRegistry()
	if registryPath == "" {
		return base, nil
	}
	extra, err := transpile.LoadRegistryExtension(registryPath)
	if err != nil {
		return nil, err
	}
	return transpile.MergeRegistry(base, extra)
}

// build runs one full parse -> emit -> cache-check -> compile cycle and
// returns the produced executable's path.
func build(inputPath, outDir string, registry transpile.ModuleRegistry, buildOpts transpile.BuildOptions, log interface {
	Debugw(string, ...interface{})
}, report bool) (string, error) {
	start := time.Now()
	data, err := transpile.ReadSource(inputPath)
	if err != nil {
		return "", err
	}

	result, err := transpile.Transpile(data, registry)
	if err != nil {
		return "", err
	}
	log.Debugw("transpiled", "imports", result.Imports, "bodyLines", len(result.Body))

	output := transpile.Assemble(result, registry)
	srcPath, execPath := transpile.ArtifactPaths(inputPath, outDir)

	changed, err := transpile.WriteIfDifferent(srcPath, output)
	if err != nil {
		return "", fmt.Errorf("writing output: %w", err)
	}

	stale := changed
	if !stale {
		stale, err = transpile.IsStale(execPath, srcPath)
		if err != nil {
			return "", err
		}
	}
	if stale {
		log.Debugw("compiling", "compiler", buildOpts.Compiler, "std", buildOpts.Std)
		if err := transpile.Compile(buildOpts, srcPath, execPath); err != nil {
			return "", err
		}
	}

	if report {
		rpt := transpile.ComputeReport(inputPath, srcPath, result, len(data), len(output), time.Since(start))
		transpile.PrintReport(rpt)
	}

	abs, err := filepath.Abs(execPath)
	if err != nil {
		abs = execPath
	}
	return abs, nil
}
