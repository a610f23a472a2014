// Package corpus builds the sample document collection used to seed
// the analyzer.
//
// A corpus combines three groups: Wikipedia article summaries fetched
// from the REST API (rate limited, failures skipped), embedded news
// and short-text samples, and two manually crafted documents. The
// result is written as a JSON snapshot that the server loads at
// startup.
package corpus
