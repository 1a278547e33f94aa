package document_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"worldinsight/pkg/document"
	"worldinsight/pkg/document/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validID = primitive.NewObjectID().Hex()

// liveStoreContext matches a context that is not cancelled and carries a
// deadline.
func liveStoreContext() any {
	return mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok && ctx.Err() == nil
	})
}

func TestServiceDetachesCancellation(t *testing.T) {
	repo := mocks.NewRepoDocument(t)
	svc := document.NewService(repo, time.Second)

	parent, cancel := context.WithCancel(context.Background())
	cancel()

	repo.On("Create", liveStoreContext(), document.Document{"a": 1}).
		Return(&document.InsertResult{Acknowledged: true, InsertedID: "id"}, nil)

	res, err := svc.Create(parent, document.Document{"a": 1})

	require.NoError(t, err)
	assert.Equal(t, "id", res.InsertedID)
}

func TestServiceWithoutTimeout(t *testing.T) {
	repo := mocks.NewRepoDocument(t)
	svc := document.NewService(repo, 0)

	repo.On("GetAll", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return !ok && ctx.Err() == nil
	})).Return([]document.Document{}, nil)

	docs, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestServiceRejectsInvalidIDBeforeStore(t *testing.T) {
	repo := mocks.NewRepoDocument(t)
	svc := document.NewService(repo, time.Second)

	_, err := svc.GetByID(ctx, "bad")
	assert.ErrorIs(t, err, document.ErrInvalidID)

	_, err = svc.Update(ctx, "bad", document.Document{"title": "x"})
	assert.ErrorIs(t, err, document.ErrInvalidID)

	_, err = svc.Delete(ctx, "bad")
	assert.ErrorIs(t, err, document.ErrInvalidID)

	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestServiceDelegates(t *testing.T) {
	repo := mocks.NewRepoDocument(t)
	svc := document.NewService(repo, time.Second)

	repo.On("GetByField", liveStoreContext(), "userMail", "a@b.c").
		Return([]document.Document{{"userMail": "a@b.c"}}, nil)
	repo.On("GetByID", liveStoreContext(), validID).Return(nil, nil)
	repo.On("Upsert", liveStoreContext(), validID, document.Document{"title": "x"}).
		Return(&document.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil)
	repo.On("Delete", liveStoreContext(), validID).
		Return(nil, errors.New("store down"))

	docs, err := svc.GetByField(ctx, "userMail", "a@b.c")
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	doc, err := svc.GetByID(ctx, validID)
	require.NoError(t, err)
	assert.Nil(t, doc)

	upd, err := svc.Update(ctx, validID, document.Document{"title": "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.UpsertedCount)

	_, err = svc.Delete(ctx, validID)
	assert.EqualError(t, err, "store down")
}

func TestDecode(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		doc, err := document.Decode(strings.NewReader(`{"title":"x","views":3,"tags":["a"],"author":{"name":"Al"}}`))

		require.NoError(t, err)
		assert.Equal(t, "x", doc["title"])
		assert.EqualValues(t, 3, doc["views"])
		assert.Equal(t, document.Document{"name": "Al"}, doc["author"])
	})

	t.Run("empty object", func(t *testing.T) {
		doc, err := document.Decode(strings.NewReader(` {} `))

		require.NoError(t, err)
		assert.Empty(t, doc)
	})

	t.Run("extended json id", func(t *testing.T) {
		doc, err := document.Decode(strings.NewReader(`{"blogId":{"$oid":"` + validID + `"}}`))

		require.NoError(t, err)
		assert.IsType(t, primitive.ObjectID{}, doc["blogId"])
	})

	for name, body := range map[string]string{
		"empty":  ``,
		"string": `"alice"`,
		"array":  `[1,2]`,
		"null":   `null`,
		"broken": `{"title": }`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := document.Decode(strings.NewReader(body))

			assert.ErrorIs(t, err, document.ErrInvalidBody)
		})
	}

	t.Run("too large", func(t *testing.T) {
		body := `{"x":"` + strings.Repeat("a", 1<<20) + `"}`

		_, err := document.Decode(strings.NewReader(body))

		assert.ErrorIs(t, err, document.ErrInvalidBody)
	})
}
