// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: the authoritative in-memory document collection
//   - SentimentScorer: polarity-threshold sentiment classification
//   - KeywordExtractor: TF-IDF keyword extraction with a frequency
//     fallback; contractually never fails
//   - ReadabilityScorer: grade-level scoring with a -1.0 sentinel
//   - TextMetrics: word and sentence counts
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
