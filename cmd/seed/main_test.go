package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/library-api/internal/models"
	"github.com/sbilibin2017/library-api/internal/services"
)

func TestGenerateBooks(t *testing.T) {
	books := generateBooks(200, rand.New(rand.NewPCG(1, 2)))
	require.Len(t, books, 200)

	assert.Equal(t, "The Great Adventure", books[0].Name)
	assert.Equal(t, "Beneath the Surface", books[19].Name)
	assert.Equal(t, "The Great Adventure 2", books[20].Name)
	assert.Equal(t, "Beneath the Surface 10", books[199].Name)

	names := make(map[string]struct{}, len(books))
	for _, b := range books {
		names[b.Name] = struct{}{}
		assert.NoError(t, b.Validate())
		if b.PublishedYear != nil {
			assert.GreaterOrEqual(t, *b.PublishedYear, 1800)
			assert.LessOrEqual(t, *b.PublishedYear, 2024)
		}
	}
	assert.Len(t, names, 200)
}

type fakeCreator struct {
	existing map[string]bool
	failOn   string
}

func (f *fakeCreator) Create(ctx context.Context, req models.CreateBookRequest) (*models.Book, error) {
	if req.Name == f.failOn {
		return nil, errors.New("db down")
	}
	if f.existing[req.Name] {
		return nil, services.ErrBookAlreadyExists
	}
	f.existing[req.Name] = true
	return &models.Book{Name: req.Name}, nil
}

func TestSeed(t *testing.T) {
	books := []models.CreateBookRequest{{Name: "A", Author: "X"}, {Name: "B", Author: "X"}, {Name: "C", Author: "X"}}

	t.Run("skips existing names", func(t *testing.T) {
		inserted, skipped, err := seed(context.Background(), &fakeCreator{existing: map[string]bool{"B": true}}, books)
		require.NoError(t, err)
		assert.Equal(t, 2, inserted)
		assert.Equal(t, 1, skipped)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		inserted, _, err := seed(context.Background(), &fakeCreator{existing: map[string]bool{}, failOn: "B"}, books)
		assert.EqualError(t, err, "db down")
		assert.Equal(t, 1, inserted)
	})
}
