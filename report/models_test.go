package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failCount(n int) *int {
	return &n
}

func TestReport_LatestFailureCount(t *testing.T) {
	tests := []struct {
		name    string
		report  Report
		want    int
		wantErr string
	}{
		{
			name: "Latest build of the first group",
			report: Report{BuildGroups: []BuildGroup{
				{Builds: []Build{
					{Test: &TestSummary{Fail: failCount(8)}},
					{Test: &TestSummary{Fail: failCount(1)}},
				}},
				{Builds: []Build{
					{Test: &TestSummary{Fail: failCount(42)}},
				}},
			}},
			want: 1,
		},
		{
			name: "Earlier build without test summary is ignored",
			report: Report{BuildGroups: []BuildGroup{
				{Builds: []Build{
					{},
					{Test: &TestSummary{Fail: failCount(0)}},
				}},
			}},
			want: 0,
		},
		{
			name:    "No build groups",
			report:  Report{BuildGroups: []BuildGroup{}},
			wantErr: "Unexpected json structure: empty buildgroups",
		},
		{
			name: "Latest build without fail count",
			report: Report{BuildGroups: []BuildGroup{
				{Builds: []Build{
					{Test: &TestSummary{Fail: failCount(3)}},
					{Test: &TestSummary{}},
				}},
			}},
			wantErr: "Unexpected json structure: missing test.fail in the latest build",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.report.LatestFailureCount()
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
