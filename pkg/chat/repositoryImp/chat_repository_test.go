package repositoryImp

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbot/database"
	"farmbot/entities"
	"farmbot/pkg/chat/repository"
)

func backends(t *testing.T) map[string]repository.ChatRepository {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	out := map[string]repository.ChatRepository{
		"memory": NewMemory(),
		"sqlite": NewSQLite(db),
	}
	if url := os.Getenv("FARMBOT_TEST_DATABASE_URL"); url != "" {
		pool, err := database.OpenPostgres(context.Background(), url)
		require.NoError(t, err)
		t.Cleanup(pool.Close)
		out["postgres"] = NewPostgres(pool)
	}
	return out
}

func TestChatRepository(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			farmerID := "farmer-" + name
			base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

			late := &entities.ChatMessage{FarmerID: farmerID, Message: "second", Timestamp: base.Add(time.Minute)}
			early := &entities.ChatMessage{FarmerID: farmerID, Message: "first", Timestamp: base, IsVoice: true}
			other := &entities.ChatMessage{FarmerID: "someone-else", Message: "x"}
			for _, m := range []*entities.ChatMessage{late, early, other} {
				require.NoError(t, repo.Create(ctx, m))
				require.NotEmpty(t, m.ID)
			}
			assert.False(t, other.Timestamp.IsZero())

			updated, err := repo.UpdateResponse(ctx, early.ID, "Use neem oil.")
			require.NoError(t, err)
			require.NotNil(t, updated.Response)
			assert.Equal(t, "Use neem oil.", *updated.Response)
			assert.True(t, updated.IsVoice)

			list, err := repo.ListByFarmer(ctx, farmerID)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "first", list[0].Message)
			assert.Equal(t, "second", list[1].Message)
			assert.Nil(t, list[1].Response)

			empty, err := repo.ListByFarmer(ctx, "nobody")
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)

			_, err = repo.UpdateResponse(ctx, "missing", "x")
			assert.ErrorIs(t, err, entities.ErrNotFound)
		})
	}
}
