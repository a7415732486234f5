// Package normalisers provides implementations of the normalisation
// ports. Each normaliser canonicalises one kind of scraped text:
// phone turns raw register phone strings into "+353 ..." form, name
// reduces trading names to the match keys used for comparison and
// dataset deduplication.
package normalisers
