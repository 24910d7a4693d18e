package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskcard/internal/models"
)

func TestLinkIssues(t *testing.T) {
	bug := &models.IssueTracker{ID: 1, Regex: `BUG-(\d+)`, URL: "https://t/%BUGID%"}

	tests := []struct {
		name     string
		text     string
		trackers []*models.IssueTracker
		want     string
	}{
		{
			name:     "no trackers",
			text:     "BUG-1",
			trackers: nil,
			want:     "BUG-1",
		},
		{
			name:     "no match",
			text:     "nothing here",
			trackers: []*models.IssueTracker{bug},
			want:     "nothing here",
		},
		{
			name:     "two references",
			text:     "see BUG-42 and BUG-7",
			trackers: []*models.IssueTracker{bug},
			want: `see <a href="https://t/42" target="tb_external" rel="noreferrer">BUG-42</a> and ` +
				`<a href="https://t/7" target="tb_external" rel="noreferrer">BUG-7</a>`,
		},
		{
			name:     "case insensitive keeps matched text",
			text:     "bug-5",
			trackers: []*models.IssueTracker{bug},
			want:     `<a href="https://t/5" target="tb_external" rel="noreferrer">bug-5</a>`,
		},
		{
			name:     "duplicates linked at their own position",
			text:     "BUG-1 BUG-1",
			trackers: []*models.IssueTracker{bug},
			want: `<a href="https://t/1" target="tb_external" rel="noreferrer">BUG-1</a> ` +
				`<a href="https://t/1" target="tb_external" rel="noreferrer">BUG-1</a>`,
		},
		{
			name:     "placeholder repeated in template",
			text:     "BUG-9",
			trackers: []*models.IssueTracker{{Regex: `BUG-(\d+)`, URL: "https://t/%BUGID%?q=%BUGID%"}},
			want:     `<a href="https://t/9?q=9" target="tb_external" rel="noreferrer">BUG-9</a>`,
		},
		{
			name:     "pattern without group uses whole match",
			text:     "JIRA1",
			trackers: []*models.IssueTracker{{Regex: `JIRA\d`, URL: "https://j/%BUGID%"}},
			want:     `<a href="https://j/JIRA1" target="tb_external" rel="noreferrer">JIRA1</a>`,
		},
		{
			name:     "empty matches ignored",
			text:     "abc",
			trackers: []*models.IssueTracker{{Regex: `x*`, URL: "https://e/%BUGID%"}},
			want:     "abc",
		},
		{
			name: "trackers applied in order",
			text: "BUG-3 and GH-4",
			trackers: []*models.IssueTracker{
				bug,
				{Regex: `GH-(\d+)`, URL: "https://gh/%BUGID%"},
			},
			want: `<a href="https://t/3" target="tb_external" rel="noreferrer">BUG-3</a> and ` +
				`<a href="https://gh/4" target="tb_external" rel="noreferrer">GH-4</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LinkIssues(tt.text, tt.trackers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinkIssues_InvalidPattern(t *testing.T) {
	trackers := []*models.IssueTracker{
		{ID: 4, Regex: `[`, URL: "https://x/%BUGID%"},
		{ID: 5, Regex: `T-(\d+)`, URL: "https://t/%BUGID%"},
	}

	got, err := LinkIssues("T-1", trackers)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue tracker 4")
	assert.Equal(t, `<a href="https://t/1" target="tb_external" rel="noreferrer">T-1</a>`, got)
}

func TestLinkIssues_LaterTrackerSeesEarlierAnchors(t *testing.T) {
	// A later tracker runs over the earlier output, anchors included
	trackers := []*models.IssueTracker{
		{Regex: `BUG-(\d+)`, URL: "https://t/%BUGID%"},
		{Regex: `noreferrer`, URL: "https://n/%BUGID%"},
	}

	got, err := LinkIssues("BUG-1", trackers)

	require.NoError(t, err)
	assert.Contains(t, got, `https://n/noreferrer`)
}
