package repositoryImp

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbot/database"
	"farmbot/entities"
	"farmbot/pkg/market/repository"
)

func backends(t *testing.T) map[string]repository.MarketRepository {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	out := map[string]repository.MarketRepository{
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

func crops(ps []entities.MarketPrice) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Crop
	}
	return out
}

func TestList(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Now().Add(time.Hour)
			district := fmt.Sprintf("Kannur-%s-%d", name, base.UnixNano())
			seed := []entities.MarketPrice{
				{Crop: "Pepper", District: district, PricePerKg: "₹520", Trend: "up", Date: base},
				{Crop: "Areca", District: "Kasaragod-" + name, PricePerKg: "₹410", Trend: "stable", Date: base.Add(time.Millisecond)},
				{Crop: "Cashew", District: district, PricePerKg: "₹130", Trend: "down", Date: base.Add(2 * time.Millisecond)},
			}
			for i := range seed {
				require.NoError(t, repo.Create(ctx, &seed[i]))
				assert.NotEmpty(t, seed[i].ID)
			}

			got, err := repo.List(ctx, strings.ToUpper(district))
			require.NoError(t, err)
			assert.Equal(t, []string{"Pepper", "Cashew"}, crops(got))

			all, err := repo.List(ctx, "")
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(all), 3)
			assert.Equal(t, []string{"Cashew", "Areca", "Pepper"}, crops(all[:3]))

			none, err := repo.List(ctx, "Nowhere")
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}
