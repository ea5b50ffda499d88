// Package ingredient implements the ingredient search semantics: recipes
// match a query when any normalized query term appears as a substring of
// any normalized ingredient token. Substring containment (not exact match)
// is intentional, so "egg" finds "eggplant".
package ingredient

import (
	"strings"

	"Cookers-Backend/entities"
)

// Tokens normalizes an ingredient list: trims, lower-cases and drops
// empty fragments. Order follows the input.
func Tokens(ingredients []string) []string {
	tokens := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		token := strings.ToLower(strings.TrimSpace(ing))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// MatchesAny reports whether any normalized query term is contained in any
// ingredient token. An empty normalized term set matches nothing; callers
// wanting "no filter" use Filter, which treats empty terms as identity.
func MatchesAny(ingredients []string, queryTerms []string) bool {
	terms := Tokens(queryTerms)
	if len(terms) == 0 {
		return false
	}

	tokens := Tokens(ingredients)
	for _, term := range terms {
		for _, token := range tokens {
			if strings.Contains(token, term) {
				return true
			}
		}
	}
	return false
}

// Filter keeps the recipes matching any query term, preserving input order.
// Empty query terms return the input unchanged.
func Filter(recipes []*entities.Recipe, queryTerms []string) []*entities.Recipe {
	if len(Tokens(queryTerms)) == 0 {
		return recipes
	}

	filtered := make([]*entities.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if MatchesAny(recipe.IngredientNames(), queryTerms) {
			filtered = append(filtered, recipe)
		}
	}
	return filtered
}
