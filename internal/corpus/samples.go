package corpus

import (
	"fmt"
	"time"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

// DefaultWikipediaTitles are the article summaries fetched when the
// config does not override fetch.titles.
var DefaultWikipediaTitles = []string{
	"Python_(programming_language)",
	"Climate_change",
	"Artificial_intelligence",
	"Space_exploration",
	"Renewable_energy",
	"Music_theory",
	"Cooking",
}

type newsSample struct {
	title    string
	content  string
	category string
}

var newsSamples = []newsSample{
	{
		title: "Breakthrough in Renewable Energy Technology",
		content: "Scientists at leading universities have developed a new solar panel " +
			"technology that could revolutionize renewable energy. The breakthrough promises " +
			"to increase efficiency by 40% while reducing manufacturing costs. This development " +
			"comes at a crucial time as governments worldwide push for cleaner energy solutions.",
		category: "Technology",
	},
	{
		title: "Local Community Garden Initiative Blooms",
		content: "A grassroots community garden project has transformed an abandoned lot " +
			"into a thriving green space. Residents have come together to grow fresh vegetables " +
			"and herbs, creating not just food but also stronger neighborhood bonds. The " +
			"initiative has become a model for urban sustainability.",
		category: "Community",
	},
	{
		title: "Economic Uncertainty Affects Small Businesses",
		content: "Recent market fluctuations have created challenges for small business " +
			"owners across the region. Many are adapting by embracing digital transformation " +
			"and finding new ways to connect with customers. Economic experts suggest that " +
			"flexibility and innovation will be key to weathering current uncertainties.",
		category: "Business",
	},
}

type shortSample struct {
	title         string
	content       string
	category      string
	sentimentHint string
}

var shortSamples = []shortSample{
	{
		title: "Inspirational Quote",
		content: "The only way to do great work is to love what you do. Success comes to " +
			"those who dare to pursue their dreams with passion and persistence.",
		category:      "Inspiration",
		sentimentHint: domain.SentimentPositive,
	},
	{
		title: "Technical Explanation",
		content: "Machine learning algorithms process vast amounts of data to identify " +
			"patterns and make predictions. These systems learn from examples without being " +
			"explicitly programmed for every scenario.",
		category:      "Technical",
		sentimentHint: domain.SentimentNeutral,
	},
	{
		title: "Product Review - Negative",
		content: "Unfortunately, this product did not meet my expectations. The build " +
			"quality feels cheap and the functionality is limited. I would not recommend this " +
			"to others and will be returning it.",
		category:      "Review",
		sentimentHint: domain.SentimentNegative,
	},
	{
		title: "Product Review - Positive",
		content: "Absolutely fantastic product! The quality exceeded my expectations and " +
			"the customer service was outstanding. I highly recommend this to anyone " +
			"considering a purchase.",
		category:      "Review",
		sentimentHint: domain.SentimentPositive,
	},
	{
		title: "Creative Writing Sample",
		content: "The old lighthouse stood sentinel against the storm, its beam cutting " +
			"through the darkness like a sword of hope. Waves crashed against the rocky " +
			"shore, but the structure remained unmoved, a testament to human ingenuity and " +
			"determination.",
		category:      "Creative",
		sentimentHint: domain.SentimentNeutral,
	},
}

// NewsDocuments returns the embedded news samples with ids news_1..n.
func NewsDocuments(now time.Time) []domain.Document {
	date := now.Format(time.RFC3339)

	docs := make([]domain.Document, 0, len(newsSamples))
	for i, s := range newsSamples {
		docs = append(docs, domain.Document{
			ID:        fmt.Sprintf("news_%d", i+1),
			Title:     s.title,
			Content:   s.content,
			Source:    "News Sample",
			Category:  s.category,
			Date:      date,
			WordCount: domain.CountWords(s.content),
		})
	}
	return docs
}

// ShortDocuments returns the embedded short-text samples with ids
// short_1..n. Each carries a sentiment hint for eyeballing scorer
// output against expectations.
func ShortDocuments(now time.Time) []domain.Document {
	date := now.Format(time.RFC3339)

	docs := make([]domain.Document, 0, len(shortSamples))
	for i, s := range shortSamples {
		docs = append(docs, domain.Document{
			ID:            fmt.Sprintf("short_%d", i+1),
			Title:         s.title,
			Content:       s.content,
			Source:        "Sample Collection",
			Category:      s.category,
			Date:          date,
			WordCount:     domain.CountWords(s.content),
			SentimentHint: s.sentimentHint,
		})
	}
	return docs
}

// ManualDocuments returns the two hand-written samples that round out
// the corpus with very short and very dense texts.
func ManualDocuments(now time.Time) []domain.Document {
	date := now.Format(time.RFC3339)

	recipe := "Heat oil in pan. Add onions. Cook until golden. Add garlic. Stir for one " +
		"minute. Season with salt and pepper. Serve hot."
	abstract := "This study examines the correlation between social media usage and academic " +
		"performance among university students. Data was collected from 500 participants over " +
		"a six-month period. Results indicate a moderate negative correlation between excessive " +
		"social media use and GPA scores. The findings suggest that educational institutions " +
		"should consider implementing digital wellness programs."

	return []domain.Document{
		{
			ID:        "manual_1",
			Title:     "Simple Recipe Instructions",
			Content:   recipe,
			Source:    "Manual Sample",
			Category:  "Instructions",
			Date:      date,
			WordCount: domain.CountWords(recipe),
		},
		{
			ID:        "manual_2",
			Title:     "Academic Abstract Sample",
			Content:   abstract,
			Source:    "Manual Sample",
			Category:  "Academic",
			Date:      date,
			WordCount: domain.CountWords(abstract),
		},
	}
}
