package report

import "fmt"

// Report is the dashboard document served by the CDash api/v1/index.php endpoint.
type Report struct {
	BuildGroups []BuildGroup `json:"buildgroups"`
}

// BuildGroup ...
type BuildGroup struct {
	// Builds are in submission order, the last one is the most recent.
	Builds []Build `json:"builds"`
}

// Build ...
type Build struct {
	Test *TestSummary `json:"test"`
}

// TestSummary ...
type TestSummary struct {
	Fail *int `json:"fail"`
}

// LatestBuild returns the most recent build of the first build group.
func (r Report) LatestBuild() (Build, error) {
	if r.BuildGroups == nil {
		return Build{}, newUnexpectedStructureError("missing buildgroups", nil)
	}
	if len(r.BuildGroups) == 0 {
		return Build{}, newUnexpectedStructureError("empty buildgroups", nil)
	}

	builds := r.BuildGroups[0].Builds
	if builds == nil {
		return Build{}, newUnexpectedStructureError("missing builds in the first build group", nil)
	}
	if len(builds) == 0 {
		return Build{}, newUnexpectedStructureError("empty builds in the first build group", nil)
	}

	return builds[len(builds)-1], nil
}

// LatestFailureCount returns the test.fail value of the latest build in the first build group.
func (r Report) LatestFailureCount() (int, error) {
	build, err := r.LatestBuild()
	if err != nil {
		return 0, err
	}

	if build.Test == nil {
		return 0, newUnexpectedStructureError("missing test in the latest build", nil)
	}
	if build.Test.Fail == nil {
		return 0, newUnexpectedStructureError("missing test.fail in the latest build", nil)
	}

	fail := *build.Test.Fail
	if fail < 0 {
		return 0, newUnexpectedStructureError(fmt.Sprintf("negative test.fail (%d) in the latest build", fail), nil)
	}

	return fail, nil
}
