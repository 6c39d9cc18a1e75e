package regexp

import (
	"strings"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled regular expression backed by either coregex or
// regexp2.
type Regexp struct {
	core *coregex.Regex
	pcre *regexp2.Regexp
}

// Compile parses a regular expression. Patterns that need PCRE features are
// compiled with regexp2; everything else uses coregex.
func Compile(pattern string) (*Regexp, error) {
	if needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, err
		}
		return &Regexp{pcre: re}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{core: re}, nil
}

// MatchString reports whether s contains any match of r.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// Filter returns the elements of ss that match r, in order.
func (r *Regexp) Filter(ss []string) []string {
	var out []string
	for _, s := range ss {
		if r.MatchString(s) {
			out = append(out, s)
		}
	}
	return out
}

// pcreOnly lists constructs RE2 rejects but PCRE accepts.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = []string{
	// lookarounds
	"(?=", "(?!", "(?<=", "(?<!",
	// atomic, branch reset, conditional and comment groups
	"(?>", "(?|", "(?(", "(?#",
	// recursion and named calls
	"(?R)", "(?P>", "(?&",
	// named backreferences
	"(?P=", `\k<`, `\k'`, `\k{`, `\g`,
	// anchors and escapes RE2 does not know
	`\A`, `\Z`, `\G`, `\K`, `\h`, `\H`, `\R`, `\X`, `\e`,
	// verbs
	"(*",
}

// needsPCRE reports whether pattern uses a construct only regexp2 can run.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// Numbered backreferences: an unescaped backslash followed by 1-9.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// RE2 only spells named groups as (?P<name>...).
	if !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'")) {
		return true
	}

	return false
}
