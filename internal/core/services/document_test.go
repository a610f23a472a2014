package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsight-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

func newTestDocumentService(t *testing.T, docs ...domain.Document) *DocumentService {
	t.Helper()

	store := memory.NewDocumentStore()
	for _, doc := range docs {
		_, err := store.Append(context.Background(), doc)
		require.NoError(t, err)
	}
	return NewDocumentService(store)
}

func TestDocumentService_List_ReturnsInsertionOrder(t *testing.T) {
	svc := newTestDocumentService(t,
		domain.Document{ID: "a", Title: "First"},
		domain.Document{ID: "b", Title: "Second"},
	)

	docs, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "First", docs[0].Title)
	assert.Equal(t, "Second", docs[1].Title)
}

func TestDocumentService_Get_UnknownIDReturnsNotFound(t *testing.T) {
	svc := newTestDocumentService(t)

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_Add_AssignsGeneratedID(t *testing.T) {
	svc := newTestDocumentService(t)

	id, err := svc.Add(context.Background(), domain.Document{
		Title:   "New",
		Content: "Some content here.",
	})
	require.NoError(t, err)

	assert.Equal(t, "user_1", id)
}

func TestDocumentService_Search_DelegatesToStore(t *testing.T) {
	svc := newTestDocumentService(t,
		domain.Document{ID: "a", Title: "Go patterns", Content: "Channels and goroutines."},
	)

	matches, err := svc.Search(context.Background(), "goroutines")
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "a", matches[0].ID)
}

func TestDocumentService_NilStoreReturnsNotImplemented(t *testing.T) {
	svc := &DocumentService{}

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = svc.Get(context.Background(), "a")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = svc.Add(context.Background(), domain.Document{})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = svc.Search(context.Background(), "q")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
