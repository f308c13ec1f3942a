package pineconeindex

import (
	"testing"

	"google.golang.org/protobuf/types/known/structpb"
)

func TestNewIndex(t *testing.T) {
	index := NewIndex(nil, "drug-index.example.pinecone.io", "default")
	if index == nil {
		t.Fatal("NewIndex returned nil")
	}
	if index.host != "drug-index.example.pinecone.io" {
		t.Errorf("host = %q", index.host)
	}
	if index.namespace != "default" {
		t.Errorf("namespace = %q", index.namespace)
	}
}

func TestMetadataText(t *testing.T) {
	t.Run("extracts text field", func(t *testing.T) {
		meta, err := structpb.NewStruct(map[string]any{
			"text": "known fake product. Reason: wrong batch code",
		})
		if err != nil {
			t.Fatalf("NewStruct error: %v", err)
		}

		got := metadataText(meta)
		want := "known fake product. Reason: wrong batch code"
		if got != want {
			t.Errorf("metadataText = %q, want %q", got, want)
		}
	})

	t.Run("nil metadata yields empty string", func(t *testing.T) {
		if got := metadataText(nil); got != "" {
			t.Errorf("metadataText(nil) = %q, want empty", got)
		}
	})

	t.Run("missing or non-string text yields empty string", func(t *testing.T) {
		meta, err := structpb.NewStruct(map[string]any{"label": "fake", "text": 42})
		if err != nil {
			t.Fatalf("NewStruct error: %v", err)
		}
		if got := metadataText(meta); got != "" {
			t.Errorf("metadataText = %q, want empty", got)
		}
	})
}
