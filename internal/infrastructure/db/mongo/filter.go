package mongo

import "regexp"

// regexEscape neutralises regex metacharacters in user-supplied search text
// so free-text filters stay substring matches.
func regexEscape(s string) string {
	return regexp.QuoteMeta(s)
}
