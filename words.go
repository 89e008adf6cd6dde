// Package weave generates dense crossword grids from word lists. The search
// engine lives in xw_generator/generator; this package holds the word
// sourcing and serving glue around it.
package weave

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// wordsTable is the curated word corpus, ranked by editorial preference.
const wordsTable = "words.curated"

type wordRow struct {
	Word    string `bigquery:"word"`
	Obscure bool   `bigquery:"obscure"`
}

// LoadWordsFromCloud fetches the curated word list for a scope from
// BigQuery, split into preferred and obscure words, keeping only words that
// can fit a grid dimension of maxLen. The project is detected from the
// environment.
func LoadWordsFromCloud(ctx context.Context, scope string, includeObscure bool, maxLen int) (preferred, obscure []string, err error) {
	client, err := bigquery.NewClient(ctx, bigquery.DetectProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("creating bigquery client: %w", err)
	}
	defer client.Close()

	q := client.Query(cloudWordsQuery(includeObscure))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "scope", Value: scope},
		{Name: "max_len", Value: maxLen},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("querying words: %w", err)
	}
	for {
		var row wordRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading words: %w", err)
		}
		w := strings.ToUpper(strings.TrimSpace(row.Word))
		if w == "" {
			continue
		}
		if row.Obscure {
			obscure = append(obscure, w)
		} else {
			preferred = append(preferred, w)
		}
	}
	return preferred, obscure, nil
}

// cloudWordsQuery builds the corpus query. Ordering by rank keeps the cloud
// list deterministic across runs.
func cloudWordsQuery(includeObscure bool) string {
	q := "SELECT word, obscure FROM `" + wordsTable + "`" +
		" WHERE scope = @scope AND LENGTH(word) <= @max_len"
	if !includeObscure {
		q += " AND NOT obscure"
	}
	return q + " ORDER BY rank"
}

// LoadWordsFromFile reads one word per line, uppercases it, and drops
// anything containing characters outside A-Z as well as duplicates. Lines
// may carry a comma-separated clue after the word; it is ignored here.
func LoadWordsFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	var words []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w, _, _ := strings.Cut(scanner.Text(), ",")
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || seen[w] || !allLetters(w) {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

func allLetters(w string) bool {
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
