package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-cdash-test-failures/report"
	"github.com/pkg/errors"
)

const (
	failCountOutputKey = "CDASH_TEST_FAIL_COUNT"
	maxExitCode        = 255
)

// Config ...
type Config struct {
	ReportPath   string `env:"report_path"`
	ExportOutput bool   `env:"export_output"`
	DebugMode    bool   `env:"debug_mode"`
}

// OutputExporter ...
type OutputExporter interface {
	ExportOutput(key, value string) error
}

func main() {
	envRepo := env.NewRepository()
	exporter := export.NewExporter(command.NewFactory(envRepo))

	os.Exit(run(os.Args[1:], envRepo, &exporter, os.Stdout))
}

// fail prints the diagnostic line shell callers grep for and returns the failure status.
func fail(w io.Writer, format string, v ...interface{}) int {
	fmt.Fprintf(w, "ERROR:"+format+"\n", v...)
	return 1
}

func run(args []string, envRepo env.Repository, exporter OutputExporter, stdout io.Writer) int {
	logger := log.NewLogger()

	var config Config
	if err := stepconf.NewInputParser(envRepo).Parse(&config); err != nil {
		return fail(stdout, "Issue with input: %s", err)
	}

	logger.EnableDebugLog(config.DebugMode)
	if config.DebugMode {
		stepconf.Print(config)
	}

	reportPath, err := resolveReportPath(args, config)
	if err != nil {
		return fail(stdout, "%s", err)
	}

	if absPath, err := pathutil.NewPathModifier().AbsPath(reportPath); err != nil {
		logger.Debugf("Failed to expand report path (%s): %s", reportPath, err)
	} else {
		logger.Debugf("Report path: %s", absPath)
	}

	reader := report.NewReader(fileutil.NewFileManager(), logger)
	count, err := reader.FailureCount(reportPath)
	if err != nil {
		logger.Debugf("Failed to get the failure count (%s): %v", errorKind(err), errors.Unwrap(err))
		return fail(stdout, "%s", err)
	}

	if config.ExportOutput {
		if err := exporter.ExportOutput(failCountOutputKey, strconv.Itoa(count)); err != nil {
			logger.Warnf("Failed to export %s: %s", failCountOutputKey, err)
		} else {
			logger.Debugf("The failure count is now available in the Environment Variable: %s (value: %d)", failCountOutputKey, count)
		}
	}

	return exitCode(count)
}

func resolveReportPath(args []string, config Config) (string, error) {
	switch len(args) {
	case 0:
		if config.ReportPath != "" {
			return config.ReportPath, nil
		}
		return report.DefaultPath, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("too many arguments (%d), usage: %s [report path]", len(args), os.Args[0])
	}
}

// exitCode maps a failure count to a process exit status, saturating at 255.
func exitCode(count int) int {
	if count > maxExitCode {
		return maxExitCode
	}
	return count
}

func errorKind(err error) string {
	var (
		accessErr    *report.FileAccessError
		malformedErr *report.MalformedInputError
		structureErr *report.UnexpectedStructureError
	)
	switch {
	case errors.As(err, &accessErr):
		return "file access error"
	case errors.As(err, &malformedErr):
		return "malformed input"
	case errors.As(err, &structureErr):
		return "unexpected structure"
	default:
		return "error"
	}
}
