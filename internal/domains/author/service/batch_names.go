package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/author/model"
)

// batchNames answers name lookups from storage and from names claimed
// earlier in the same batch.
type batchNames struct {
	stored model.NameLookup
	seen   map[string]uuid.UUID
}

func newBatchNames(stored model.NameLookup) *batchNames {
	return &batchNames{stored: stored, seen: make(map[string]uuid.UUID)}
}

func (b *batchNames) FindByName(ctx context.Context, name string) (*model.Author, error) {
	if id, ok := b.seen[name]; ok {
		return &model.Author{ID: id, Name: name}, nil
	}
	return b.stored.FindByName(ctx, name)
}

func (b *batchNames) claim(name string) {
	b.seen[name] = uuid.New()
}
