package drift

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/types"
)

var (
	stowLinkPattern    = regexp.MustCompile(`^\s*LINK:\s+(.+?)\s+=>\s+\S`)
	stowUnlinkPattern  = regexp.MustCompile(`^\s*UNLINK:\s+(.+?)\s*$`)
	wouldLinkPattern   = regexp.MustCompile(`(?i)would (?:create|update) link\s+(\S+)`)
	wouldUnlinkPattern = regexp.MustCompile(`(?i)would remove link\s+(\S+)`)
)

// ExtractLinkOps returns the link operations described in simulation
// output, in the order they appear. Unrecognized lines are ignored.
func ExtractLinkOps(text string) []types.LinkOp {
	var ops []types.LinkOp

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if op, ok := parseLine(line); ok {
			ops = append(ops, op)
		}
	}

	return ops
}

func parseLine(line string) (types.LinkOp, bool) {
	if m := stowLinkPattern.FindStringSubmatch(line); m != nil {
		return types.LinkOp{Action: types.LinkActionLink, Path: m[1]}, true
	}
	if m := stowUnlinkPattern.FindStringSubmatch(line); m != nil {
		return types.LinkOp{Action: types.LinkActionUnlink, Path: m[1]}, true
	}
	if m := wouldLinkPattern.FindStringSubmatch(line); m != nil {
		return types.LinkOp{Action: types.LinkActionLink, Path: m[1]}, true
	}
	if m := wouldUnlinkPattern.FindStringSubmatch(line); m != nil {
		return types.LinkOp{Action: types.LinkActionUnlink, Path: m[1]}, true
	}
	return types.LinkOp{}, false
}

// firstLine returns the first non-empty line of text, trimmed
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
