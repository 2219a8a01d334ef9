// Package util contains text helpers shared by the game packages.
package util

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type letterCase int

const (
	caseLower letterCase = iota
	caseLeading
	caseAll
)

// caseOf decides how s is capitalized by looking at its first two letters.
func caseOf(s string) letterCase {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsUpper(first) {
		return caseLower
	}
	second, size := utf8.DecodeRuneInString(s[size:])
	if size > 0 && !unicode.IsUpper(second) {
		return caseLeading
	}
	return caseAll
}

func applyCase(word string, c letterCase) string {
	switch c {
	case caseAll:
		return strings.ToUpper(word)
	case caseLeading:
		first, size := utf8.DecodeRuneInString(word)
		return string(unicode.ToUpper(first)) + word[size:]
	default:
		return word
	}
}

// ArticleFor returns the article for the given string, capitalized the same
// way as the string. If definite is true, it is "the"; otherwise it is "a" or
// "an" depending on whether s starts with a vowel. An empty s gives an empty
// article.
func ArticleFor(s string, definite bool) string {
	if s == "" {
		return ""
	}

	art := "a"
	if definite {
		art = "the"
	} else if first, _ := utf8.DecodeRuneInString(s); strings.ContainsRune("aeiouAEIOU", first) {
		art = "an"
	}

	return applyCase(art, caseOf(s))
}

// withArticle puts the indefinite article in front of item. An item that is
// only capitalized because it starts a sentence is lower-cased first; one in
// all caps is left alone.
func withArticle(item string) string {
	if item == "" {
		return item
	}
	if caseOf(item) == caseLeading {
		first, size := utf8.DecodeRuneInString(item)
		item = string(unicode.ToLower(first)) + item[size:]
	}
	return ArticleFor(item, false) + " " + item
}

// MakeTextList gives a nice list of things based on their display name. If
// articles is true, each item gets the indefinite article appropriate for it.
// Lists of more than two items use an oxford comma.
func MakeTextList(items []string, articles bool) string {
	words := make([]string, len(items))
	for i, item := range items {
		if articles {
			item = withArticle(item)
		}
		words[i] = item
	}

	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	}

	last := len(words) - 1
	return strings.Join(words[:last], ", ") + ", and " + words[last]
}

// TitleCase capitalizes the first letter of each word in s and lower-cases the
// rest using English casing rules.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// OrderedKeys returns the keys of m, ordered a particular way. The order is
// guaranteed to be the same on every run.
//
// As of this writing, the order is alphabetical, but this function does not
// guarantee this will always be the case.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))

	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
