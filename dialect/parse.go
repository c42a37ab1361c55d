package dialect

import "strings"

// standardNames is the exact name table confirmed against the reference
// implementation's language()/standard() lookup tables.
var standardNames = []struct {
	name string
	std  Standard
}{
	{"c89", C89}, {"c90", C90}, {"c95", C95}, {"c99", C99}, {"c11", C11},
	{"c++98", CXX98}, {"c++03", CXX03},
	{"c++0x", CXX11}, {"c++11", CXX11},
	{"c++1y", CXX14}, {"c++14", CXX14},
	{"c++1z", CXX17}, {"c++17", CXX17},
}

// ParseStandard resolves one of the accepted standard names to its
// Standard value. C names (c89..c11) are matched case-insensitively; C++
// names (c++98..c++17) are matched case-sensitively, per spec.
func ParseStandard (name string) (Standard, error) {
	for _, e := range standardNames {
		if strings.HasPrefix(e.name, "c++") {
			if e.name == name {
				return e.std, nil
			}
		} else if strings.EqualFold(e.name, name) {
			return e.std, nil
		}
	}
	return 0, errUnknownStandard(name)
}

// ParseLanguage resolves "c" or "c++" (case-insensitively) to whether the
// language selector is C or C++.
func ParseLanguage (name string) (isCXX bool, err error) {
	switch strings.ToLower(name) {
	case "c":
		return false, nil
	case "c++":
		return true, nil
	default:
		return false, errUnknownStandard(name)
	}
}
