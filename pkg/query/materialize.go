package query

import (
	"net/url"
	"regexp"
	"strings"
)

// Subject carries the entity-derived values available for template
// materialization. Empty fields substitute as empty strings.
type Subject struct {
	Name     string
	Website  string
	Location string
	Industry string
	Aliases  []string
	Domains  []string
}

// domain resolves the {domain} value: the first entry of the known-domains
// list wins over the hostname derived from the website URL.
func (s Subject) domain() string {
	if len(s.Domains) > 0 {
		return s.Domains[0]
	}
	return hostnameOf(s.Website)
}

func (s Subject) alias() string {
	if len(s.Aliases) > 0 {
		return s.Aliases[0]
	}
	return ""
}

func hostnameOf(website string) string {
	if website == "" {
		return ""
	}
	u, err := url.Parse(website)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

type replacement struct {
	token string
	value func(Subject) string
}

// The fixed placeholder vocabulary. Tokens outside this list pass through
// the materializer verbatim.
var replacements = []replacement{
	{token: "{name}", value: func(s Subject) string { return s.Name }},
	{token: "{entity_name}", value: func(s Subject) string { return s.Name }},
	{token: "{company}", value: func(s Subject) string { return s.Name }},
	{token: "{organization}", value: func(s Subject) string { return s.Name }},
	{token: "{domain}", value: Subject.domain},
	{token: "{website}", value: func(s Subject) string { return s.Website }},
	{token: "{location}", value: func(s Subject) string { return s.Location }},
	{token: "{industry}", value: func(s Subject) string { return s.Industry }},
	{token: "{alias}", value: Subject.alias},
}

var tokenPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(replacements))
	for _, r := range replacements {
		patterns[r.token] = regexp.MustCompile("(?i)" + regexp.QuoteMeta(r.token))
	}
	return patterns
}()

// Materialize substitutes every known placeholder token in the template with
// the subject's value, case-insensitively and for all occurrences. Unknown
// tokens are left in place; this is silent and not an error.
func Materialize(template string, subject Subject) string {
	result := template
	for _, r := range replacements {
		if !strings.Contains(strings.ToLower(result), r.token) {
			continue
		}
		result = tokenPatterns[r.token].ReplaceAllLiteralString(result, r.value(subject))
	}
	return result
}
