package markup

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/thenoetrevino/taskcard/internal/models"
)

// LinkIssues turns bug references into anchors, one tracker at a time in
// the given order. Each tracker runs over the previous tracker's output.
//
// Within a tracker pass all matches are collected first and the output is
// rebuilt from the original positions, so inserted anchors are never
// rescanned by the same pattern and repeated references are each linked
// where they occur.
//
// Trackers whose pattern does not compile are skipped; their errors are
// joined into the returned error while the valid trackers still apply.
func LinkIssues(text string, trackers []*models.IssueTracker) (string, error) {
	var errs []error

	for _, tracker := range trackers {
		if tracker == nil || tracker.Regex == "" {
			continue
		}

		re, err := compileTracker(tracker.Regex)
		if err != nil {
			errs = append(errs, fmt.Errorf("issue tracker %d: invalid pattern %q: %w", tracker.ID, tracker.Regex, err))
			continue
		}

		text = linkTracker(text, re, tracker.URL)
	}

	return text, errors.Join(errs...)
}

// compileTracker compiles a tracker pattern as a case-insensitive search
func compileTracker(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + pattern)
}

func linkTracker(text string, re *regexp.Regexp, urlTemplate string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches)*(len(urlTemplate)+64))

	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start == end {
			continue
		}

		// Patterns without a capture group link on the whole match
		bugID := text[start:end]
		if len(m) >= 4 && m[2] >= 0 {
			bugID = text[m[2]:m[3]]
		}

		b.WriteString(text[last:start])
		b.WriteString(issueAnchor(urlTemplate, bugID, text[start:end]))
		last = end
	}
	b.WriteString(text[last:])

	return b.String()
}

func issueAnchor(urlTemplate, bugID, label string) string {
	href := strings.ReplaceAll(urlTemplate, models.BugIDPlaceholder, bugID)
	return `<a href="` + href + `"` + externalAttrs + ">" + label + "</a>"
}
