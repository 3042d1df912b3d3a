package qdex

import "sort"

// Query is a parsed search query: words that each add to a document's
// relevance (Plus; a document needs only one of them to match) and words
// whose presence disqualifies a document (Minus). Stop words never appear in
// either slice.
type Query struct {
	Plus  []string
	Minus []string
}

// parseQuery tokenizes text, splits each word into a sign and the word
// itself, drops stop words, and sorts+dedups Plus/Minus when dedup is
// true. Every caller passes true except parallel MatchDocument, which
// parses without dedup and instead sorts+uniquifies the narrower matched
// result afterward (see match.go) -- mirroring Query's plus_words /
// minus_words vectors in the original course project, which are
// conditionally sorted and deduplicated by a delete_copy parameter on
// ParseQuery rather than stored as a set.
func (e *Engine) parseQuery(text string, dedup bool) (Query, error) {
	if !isValidText(text) {
		return Query{}, invalidArgument("query text contains a control byte")
	}

	words := splitWords(text)
	q := Query{
		Plus:  make([]string, 0, len(words)),
		Minus: make([]string, 0, len(words)),
	}
	for _, raw := range words {
		word, negative, err := parseQueryWord(raw)
		if err != nil {
			return Query{}, err
		}
		if e.stop.contains(word) {
			continue
		}
		if negative {
			q.Minus = append(q.Minus, word)
		} else {
			q.Plus = append(q.Plus, word)
		}
	}

	if dedup {
		q.Plus = sortUnique(q.Plus)
		q.Minus = sortUnique(q.Minus)
	}
	return q, nil
}

// parseQueryWord strips one leading '-' and reports the result as
// negative. The remainder must be non-empty and must not itself begin with
// '-': "-", "--foo" and "" are all InvalidArgument.
func parseQueryWord(word string) (string, bool, error) {
	if word == "" {
		return "", false, invalidArgument("query word is empty")
	}
	negative := false
	if word[0] == '-' {
		negative = true
		word = word[1:]
	}
	if word == "" || word[0] == '-' {
		return "", false, invalidArgument("query word is invalid")
	}
	return word, negative, nil
}

// sortUnique sorts words and removes adjacent duplicates in place, reusing
// words' own backing array.
func sortUnique(words []string) []string {
	if len(words) < 2 {
		return words
	}
	sort.Strings(words)
	out := words[:1]
	for _, w := range words[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
