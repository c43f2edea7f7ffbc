package assembler

import (
	"strconv"
	"strings"
)

// HostInfo is the parsed form of a trace's line-oriented "Key: value"
// host-information document.
type HostInfo struct {
	OS       string
	Compiler string
	User     string
	Arch     string
	CPU      string
	CPUCores string // literal "unknown" is a valid value, left unparsed
	RAM      string // literal "unknown", or "<n> MB"
}

// parseHostInfo parses the trace's raw host-info text. Unrecognized or
// malformed lines are skipped; missing keys are left as the zero value.
func parseHostInfo(text string) HostInfo {
	var info HostInfo
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimLeft(value, " \t")

		switch key {
		case "OS":
			info.OS = value
		case "Compiler":
			info.Compiler = value
		case "User":
			info.User = value
		case "Arch":
			info.Arch = value
		case "CPU":
			info.CPU = value
		case "CPU cores":
			info.CPUCores = value
		case "RAM":
			info.RAM = value
		}
	}
	return info
}

// ramBytes converts a "<n> MB" RAM string to bytes. Returns 0, false if the
// value is "unknown", empty, or unparseable.
func ramBytes(ram string) (uint64, bool) {
	n, ok := strings.CutSuffix(strings.TrimSpace(ram), " MB")
	if !ok {
		return 0, false
	}
	mb, err := strconv.ParseUint(strings.TrimSpace(n), 10, 64)
	if err != nil {
		return 0, false
	}
	return mb * 1024 * 1024, true
}

// physicalCPUs parses the "CPU cores" value as an integer. Returns 0, false
// if it is "unknown", empty, or unparseable.
func physicalCPUs(cores string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(cores))
	if err != nil {
		return 0, false
	}
	return n, true
}

// joinAppInfo concatenates a trace's app-info entries with " | ",
// returning "<empty>" for an empty list.
func joinAppInfo(entries []string) string {
	if len(entries) == 0 {
		return "<empty>"
	}
	return strings.Join(entries, " | ")
}
