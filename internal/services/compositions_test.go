package services

import (
	"context"
	"os"
	"testing"

	"github.com/Conceptual-Machines/counterpoint-api/internal/database"
	"github.com/Conceptual-Machines/counterpoint-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionService_Postgres(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := database.Connect(url)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	ctx := context.Background()
	store := NewCompositionService(db)
	user := "test-" + uuid.NewString()
	t.Cleanup(func() {
		db.Where("user_id = ?", user).Delete(&models.Composition{})
	})

	c := &models.Composition{
		UserID:       user,
		Species:      1,
		CantusFirmus: []string{"C4", "D4", "E4", "D4", "C4"},
		Counterpoint: []string{"C5", "B4", "A4", "B4", "C5"},
		Solutions:    7,
		SearchSpace:  "1029",
	}
	require.NoError(t, store.Save(ctx, c))
	assert.NotEqual(t, uuid.Nil, c.ID)

	got, err := store.Get(ctx, user, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Counterpoint, got.Counterpoint)

	_, err = store.Get(ctx, "someone-else", c.ID)
	assert.ErrorIs(t, err, ErrCompositionNotFound)

	items, total, err := store.List(ctx, user, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
}
