package domain

import "strings"

// Verdict is the outcome of judging a candidate word.
type Verdict struct {
	Accepted bool
	Reason   string // empty when accepted
}

// Judge decides whether an assembled word is acceptable at the required
// length. Implementations must be safe for concurrent use and side-effect
// free; letter availability is the room's concern, not the judge's.
type Judge interface {
	Accepts(word string, requiredLength int) Verdict
}

// Lookup reports whether an uppercase word is in the dictionary.
type Lookup func(word string) bool

// DictionaryJudge accepts words found in a dictionary, optionally falling
// back to pattern heuristics so uncommon but plausible words are not
// rejected outright.
type DictionaryJudge struct {
	lookup     Lookup
	permissive bool
}

// NewDictionaryJudge creates a judge backed by the given dictionary lookup.
// When permissive is true, words missing from the dictionary are still
// accepted if they look like plausible English words.
func NewDictionaryJudge(lookup Lookup, permissive bool) *DictionaryJudge {
	return &DictionaryJudge{lookup: lookup, permissive: permissive}
}

// Accepts implements Judge.
func (j *DictionaryJudge) Accepts(word string, requiredLength int) Verdict {
	w := strings.ToUpper(strings.TrimSpace(word))

	if len(w) != requiredLength {
		return Verdict{Reason: ReasonWrongLength}
	}

	if !isAlpha(w) {
		return Verdict{Reason: ReasonNotAWord}
	}

	if j.lookup(w) {
		return Verdict{Accepted: true}
	}

	if j.permissive && looksLikeWord(w) {
		return Verdict{Accepted: true}
	}

	return Verdict{Reason: ReasonNotAWord}
}

func isAlpha(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return len(w) > 0
}

// consonantOnlyWords are real words with no vowel at all, exempted from the
// vowel-presence rule below. Y counts as a vowel for that rule, which makes
// some entries redundant; the list is kept whole anyway.
var consonantOnlyWords = map[string]struct{}{
	"HYMN": {}, "MYTH": {}, "LYNX": {}, "SYNC": {},
	"BYRL": {}, "CWMS": {}, "CRWTH": {},
}

// looksLikeWord applies cheap shape heuristics to a candidate not found in
// the dictionary: all-same-letter strings, vowelless long words, excessive
// letter repetition and long consonant runs are rejected.
func looksLikeWord(w string) bool {
	distinct := map[byte]int{}
	for i := 0; i < len(w); i++ {
		distinct[w[i]]++
	}
	if len(distinct) == 1 {
		return false
	}

	for _, n := range distinct {
		if n > len(w)/2+1 {
			return false
		}
	}

	if len(w) >= 4 && !strings.ContainsAny(w, "AEIOUY") {
		if _, ok := consonantOnlyWords[w]; !ok {
			return false
		}
	}

	run := 0
	for i := 0; i < len(w); i++ {
		if strings.IndexByte("AEIOUY", w[i]) == -1 {
			run++
			if run > 3 {
				return false
			}
		} else {
			run = 0
		}
	}

	return true
}
