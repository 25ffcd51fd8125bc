package report

import (
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/docker/go-units"
	"github.com/pkg/errors"
)

// DefaultPath is the report file CDash submissions are saved to by the test scripts.
const DefaultPath = "out.json"

// Reader ...
type Reader struct {
	fileManager fileutil.FileManager
	logger      log.Logger
}

// NewReader ...
func NewReader(fileManager fileutil.FileManager, logger log.Logger) Reader {
	return Reader{
		fileManager: fileManager,
		logger:      logger,
	}
}

// FailureCount reads the report at pth and returns the number of failed tests
// of the latest build in the first build group.
func (r Reader) FailureCount(pth string) (int, error) {
	report, err := r.Read(pth)
	if err != nil {
		return 0, err
	}

	r.logger.Debugf("Build groups: %d", len(report.BuildGroups))
	if len(report.BuildGroups) > 0 {
		r.logger.Debugf("Builds in the first build group: %d", len(report.BuildGroups[0].Builds))
	}

	count, err := report.LatestFailureCount()
	if err != nil {
		return 0, err
	}

	r.logger.Debugf("Failed tests in the latest build: %d", count)

	return count, nil
}

// Read opens, validates and decodes the report at pth.
func (r Reader) Read(pth string) (Report, error) {
	data, err := r.readFile(pth)
	if err != nil {
		return Report{}, err
	}

	if !utf8.Valid(data) || !json.Valid(data) {
		return Report{}, &MalformedInputError{Err: errors.Errorf("%s is not a valid json document", pth)}
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		err = errors.Wrap(err, "failed to decode report")
		return Report{}, newUnexpectedStructureError(err.Error(), err)
	}

	return report, nil
}

func (r Reader) readFile(pth string) ([]byte, error) {
	file, err := r.fileManager.Open(pth)
	if err != nil {
		return nil, &FileAccessError{Path: pth, Err: errors.Wrap(err, "failed to open report")}
	}
	defer func() {
		if err := file.Close(); err != nil {
			r.logger.Warnf("Failed to close report: %s", err)
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, &FileAccessError{Path: pth, Err: errors.Wrap(err, "failed to get report file info")}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Path: pth, Err: errors.Errorf("%s is a directory", pth)}
	}

	r.logger.Debugf("Reading report: %s (%s)", pth, units.HumanSize(float64(info.Size())))

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &FileAccessError{Path: pth, Err: errors.Wrap(err, "failed to read report")}
	}

	return data, nil
}
