package commands

import (
	"sort"
	"strings"
)

var knownPrefixes = []string{PrefixName, PrefixDate, PrefixPriority, PrefixVenue, PrefixTag}

type prefixValues map[string][]string

// last returns the final occurrence of prefix, trimmed.
func (p prefixValues) last(prefix string) (string, bool) {
	vals := p[prefix]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// tags returns nil when no tag prefix was given and a possibly empty slice
// otherwise; a bare "t/" yields an empty slice.
func (p prefixValues) tags() []string {
	vals, ok := p[PrefixTag]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

type prefixHit struct {
	at     int
	prefix string
}

// tokenize splits "PREAMBLE n/a b d/c" into the preamble and per-prefix
// values. A prefix only counts at the start or after whitespace.
func tokenize(args string) (string, prefixValues) {
	hits := make([]prefixHit, 0)
	for _, prefix := range knownPrefixes {
		from := 0
		for {
			i := strings.Index(args[from:], prefix)
			if i < 0 {
				break
			}
			at := from + i
			if at == 0 || args[at-1] == ' ' || args[at-1] == '\t' {
				hits = append(hits, prefixHit{at: at, prefix: prefix})
			}
			from = at + len(prefix)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].at < hits[j].at })

	values := make(prefixValues)
	if len(hits) == 0 {
		return strings.TrimSpace(args), values
	}
	preamble := strings.TrimSpace(args[:hits[0].at])
	for i, h := range hits {
		end := len(args)
		if i+1 < len(hits) {
			end = hits[i+1].at
		}
		v := strings.TrimSpace(args[h.at+len(h.prefix) : end])
		values[h.prefix] = append(values[h.prefix], v)
	}
	return preamble, values
}
