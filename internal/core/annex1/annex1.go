// Package annex1 contains the pure business rules for Reg (EC) No 396/2005
// Annex I commodity codes. This is part of the Functional Core - no I/O,
// only pure functions.
package annex1

import "strings"

// Normalize left-pads a bare numeric code to the canonical 7-digit form.
// Spreadsheets often store codes as integers, which strips leading zeros.
// Anything that is not 1-7 digits is returned unchanged.
func Normalize(code string) string {
	if len(code) == 0 || len(code) > 7 || !allDigits(code) {
		return code
	}
	return strings.Repeat("0", 7-len(code)) + code
}

// Level infers the Annex I hierarchy level from the trailing-zero pattern of
// a canonical 7-digit code: three trailing zeros mark a major group (level 1),
// exactly two a subgroup (level 2), anything else an individual commodity
// (level 3). Non-7-digit input has no level.
func Level(code string) (int, bool) {
	if !isCanonical(code) {
		return 0, false
	}
	switch {
	case strings.HasSuffix(code, "000"):
		return 1, true
	case strings.HasSuffix(code, "00"):
		return 2, true
	default:
		return 3, true
	}
}

// ParentCode derives the parent Annex I code from a child code, e.g.
// 0110010 -> 0110000. Individual commodities roll up to their subgroup when
// the fifth digit marks one, otherwise straight to the major group; subgroups
// roll up to the major group; major groups have no parent. The exact parent
// must still be verified against the Annex I text, this is the code-pattern
// heuristic only.
func ParentCode(code string) (string, bool) {
	level, ok := Level(code)
	if !ok || level == 1 {
		return "", false
	}
	if level == 2 {
		return code[:4] + "000", true
	}
	if code[4] != '0' {
		return code[:5] + "00", true
	}
	return code[:4] + "000", true
}

func isCanonical(code string) bool {
	return len(code) == 7 && allDigits(code)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
