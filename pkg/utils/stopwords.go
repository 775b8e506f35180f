package utils

import "strings"

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "when",
		"at", "by", "for", "with", "about", "against", "between", "into",
		"through", "during", "before", "after", "above", "below", "to",
		"from", "up", "down", "in", "out", "on", "off", "over", "under",
		"again", "further", "once", "here", "there", "all", "any", "both",
		"each", "few", "more", "most", "other", "some", "such", "no", "nor",
		"not", "only", "own", "same", "so", "than", "too", "very", "can",
		"will", "just", "of", "is", "are", "was", "were", "be", "been",
		"being", "have", "has", "had", "do", "does", "did", "i", "you",
		"he", "she", "it", "we", "they", "this", "that", "these", "those",
		"my", "your", "his", "her", "its", "our", "their", "what", "which",
		"who", "whom", "how", "why", "where",
	} {
		stopWords[w] = struct{}{}
	}
}

// SearchTokens lowercases the query, collapses whitespace and drops common
// stop words. An all-stopword query returns an empty slice.
func SearchTokens(query string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := stopWords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// MatchTokenCount counts how many query tokens appear as whole words in text.
// This is the relevance score videos are ranked by when searching.
func MatchTokenCount(tokens []string, text string) int {
	words := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[w] = struct{}{}
	}
	count := 0
	for _, token := range tokens {
		if _, ok := words[token]; ok {
			count++
		}
	}
	return count
}
