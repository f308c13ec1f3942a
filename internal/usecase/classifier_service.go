package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fakeguard/backend/internal/domain"
)

const (
	// reasonMarker introduces the curator note inside reference metadata.
	reasonMarker = "Reason:"

	// reasonPlaceholder is reported when a reference entry has no note.
	reasonPlaceholder = "no reason provided"
)

// ClassifierConfig holds configuration for the classifier service.
type ClassifierConfig struct {
	SimilarityThreshold float64
	TopK                int
	EnableDebugLogging  bool
}

// ClassifierService decides whether a described product is genuine,
// counterfeit, or unknown by comparing it against the labeled reference
// corpus for its category.
type ClassifierService struct {
	embedder  domain.Embedder
	indexes   map[domain.Category]domain.VectorIndex
	threshold float64
	topK      int
	debug     bool
}

// NewClassifierService creates a classifier service with the given
// collaborators and configuration. Zero or negative config values fall back
// to the defaults (threshold 0.80, top 5 matches).
func NewClassifierService(
	embedder domain.Embedder,
	indexes map[domain.Category]domain.VectorIndex,
	config ClassifierConfig,
) *ClassifierService {
	threshold := config.SimilarityThreshold
	if threshold <= 0 {
		threshold = 0.80
	}

	topK := config.TopK
	if topK <= 0 {
		topK = 5
	}

	return &ClassifierService{
		embedder:  embedder,
		indexes:   indexes,
		threshold: threshold,
		topK:      topK,
		debug:     config.EnableDebugLogging,
	}
}

// Classify runs the full decision procedure for one product record:
// normalize to description text, embed, query the category's reference
// index, then apply the scoring policy over the ranked matches.
//
// Collaborator failures propagate as wrapped errors; an empty or
// low-similarity result set is a valid verdict, not an error.
func (s *ClassifierService) Classify(ctx context.Context, record *domain.ProductRecord) (domain.Verdict, error) {
	description, err := Describe(record)
	if err != nil {
		return domain.Verdict{}, err
	}

	vector, err := s.embedder.Embed(ctx, description)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: %v", domain.ErrEmbeddingFailure, err)
	}

	index, ok := s.indexes[record.Category]
	if !ok {
		return domain.Verdict{}, domain.ErrUnknownCategory
	}

	matches, err := index.Query(ctx, vector, s.topK)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%w: %v", domain.ErrIndexFailure, err)
	}

	return s.decide(record.Category, matches), nil
}

// decide applies the verdict policy over matches ordered by descending
// similarity:
//
//   - no matches at all -> NO_MATCHES
//   - first match at or above the threshold whose metadata mentions "fake"
//     (checked before "real", so metadata containing both is FAKE) -> that
//     verdict, immediately
//   - a qualifying match mentioning neither label is passed over and the
//     scan continues
//   - nothing qualified -> UNKNOWN carrying the top-ranked match's score,
//     even when the scan skipped it
func (s *ClassifierService) decide(category domain.Category, matches []domain.ReferenceMatch) domain.Verdict {
	if len(matches) == 0 {
		if s.debug {
			log.Printf("[CHECK] %s: index returned no matches", category)
		}
		return domain.NoMatchesVerdict()
	}

	for i, match := range matches {
		if match.Score < s.threshold {
			continue
		}

		lowered := strings.ToLower(match.Metadata)
		switch {
		case strings.Contains(lowered, "fake"):
			if s.debug {
				log.Printf("[CHECK] %s: match %d scored %.2f, labeled fake", category, i, match.Score)
			}
			return domain.FakeVerdict(match.Score, extractReason(match.Metadata))
		case strings.Contains(lowered, "real"):
			if s.debug {
				log.Printf("[CHECK] %s: match %d scored %.2f, labeled real", category, i, match.Score)
			}
			return domain.RealVerdict(match.Score, extractReason(match.Metadata))
		}
		// Unlabeled reference entry: keep scanning.
	}

	if s.debug {
		log.Printf("[CHECK] %s: no labeled match at or above %.2f (top score %.2f)",
			category, s.threshold, matches[0].Score)
	}
	return domain.UnknownVerdict(matches[0].Score)
}

// extractReason returns the trimmed text after the first "Reason:" marker in
// the reference metadata, or the placeholder when the marker is absent.
func extractReason(metadata string) string {
	_, after, found := strings.Cut(metadata, reasonMarker)
	if !found {
		return reasonPlaceholder
	}
	return strings.TrimSpace(after)
}
