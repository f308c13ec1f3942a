package pineconeindex

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/fakeguard/backend/internal/domain"
	"github.com/pinecone-io/go-pinecone/v2/pinecone"
)

// metadataTextField is the metadata key holding the stored reference
// description (label marker plus optional curator reason).
const metadataTextField = "text"

// Index is a read-only view over one Pinecone index. The underlying
// connection is dialed lazily on first query, at most once, and shared
// across concurrent requests afterwards.
type Index struct {
	client    *pinecone.Client
	host      string
	namespace string
	debug     bool

	once    sync.Once
	conn    *pinecone.IndexConnection
	connErr error
}

// NewClient creates the shared Pinecone API client.
func NewClient(apiKey string) (*pinecone.Client, error) {
	client, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create pinecone client: %w", err)
	}
	return client, nil
}

// NewIndex creates a lazy handle on the index at the given host.
func NewIndex(client *pinecone.Client, host, namespace string) *Index {
	return &Index{
		client:    client,
		host:      host,
		namespace: namespace,
	}
}

// SetDebug toggles query logging.
func (i *Index) SetDebug(debug bool) {
	i.debug = debug
}

// Query returns the topK nearest reference matches for the given vector,
// ordered by descending similarity, with their metadata text.
func (i *Index) Query(ctx context.Context, vector []float32, topK int) ([]domain.ReferenceMatch, error) {
	conn, err := i.connection()
	if err != nil {
		return nil, err
	}

	resp, err := conn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(topK),
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexFailure, err)
	}

	if i.debug {
		log.Printf("[INDEX] %s returned %d matches", i.host, len(resp.Matches))
	}

	matches := make([]domain.ReferenceMatch, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		matches = append(matches, domain.ReferenceMatch{
			Score:    float64(match.Score),
			Metadata: metadataText(match.Vector.Metadata),
		})
	}
	return matches, nil
}

// connection dials the index exactly once and reuses it afterwards.
func (i *Index) connection() (*pinecone.IndexConnection, error) {
	i.once.Do(func() {
		i.conn, i.connErr = i.client.Index(pinecone.NewIndexConnParams{
			Host:      i.host,
			Namespace: i.namespace,
		})
		if i.connErr != nil {
			i.connErr = fmt.Errorf("failed to connect to index %s: %w", i.host, i.connErr)
		}
	})
	return i.conn, i.connErr
}

// metadataText extracts the stored description text from match metadata.
func metadataText(metadata *pinecone.Metadata) string {
	if metadata == nil {
		return ""
	}
	if text, ok := metadata.AsMap()[metadataTextField].(string); ok {
		return text
	}
	return ""
}
