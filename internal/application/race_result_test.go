package application

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raceboard/internal/domain"
	"raceboard/internal/domain/entities"
	"raceboard/internal/ports/output"
	"raceboard/internal/testutil"
)

func notFound(context.Context, string) (string, error) {
	return "", domain.ErrNotFound
}

func TestIdentifierResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	keys := output.RacePublicKeys{Event: "evt", Category: "cat", Gender: "gen", Length: "len"}

	t.Run("all keys resolve", func(t *testing.T) {
		lookups := NewFakeLookupRepository()

		got, found, err := NewIdentifierResolver(lookups).Resolve(ctx, keys)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, output.RaceInternalKeys{
			Event: "internal-evt", Category: "internal-cat", Gender: "internal-gen", Length: "internal-len",
		}, got)
		assert.ElementsMatch(t, []string{"EventKey", "RaceCategoryKey", "RaceCategoryGenderKey", "RaceCategoryLengthKey"}, lookups.Trace())
	})

	t.Run("empty key short-circuits", func(t *testing.T) {
		lookups := NewFakeLookupRepository()
		empty := keys
		empty.Gender = ""

		_, found, err := NewIdentifierResolver(lookups).Resolve(ctx, empty)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, lookups.Trace())
	})

	t.Run("one key missing", func(t *testing.T) {
		lookups := NewFakeLookupRepository()
		lookups.RaceCategoryLengthKeyFunc = notFound

		got, found, err := NewIdentifierResolver(lookups).Resolve(ctx, keys)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, output.RaceInternalKeys{}, got)
	})

	t.Run("infrastructure failure", func(t *testing.T) {
		boom := errors.New("pool exhausted")
		lookups := NewFakeLookupRepository()
		lookups.EventKeyFunc = func(context.Context, string) (string, error) { return "", boom }

		_, found, err := NewIdentifierResolver(lookups).Resolve(ctx, keys)

		require.ErrorIs(t, err, boom)
		assert.False(t, found)
	})

	t.Run("siblings see cancellation", func(t *testing.T) {
		lookups := NewFakeLookupRepository()
		lookups.EventKeyFunc = notFound
		lookups.RaceCategoryKeyFunc = func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}

		_, found, err := NewIdentifierResolver(lookups).Resolve(ctx, keys)

		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestRaceResultService_ResolveRace(t *testing.T) {
	ctx := context.Background()

	t.Run("results come back in place order", func(t *testing.T) {
		race := testutil.NewDataGenerator(9).RaceWithResults(3, 1, 2)
		races := NewFakeRaceRepository()
		var gotKeys output.RaceInternalKeys
		races.FindWithResultsFunc = func(_ context.Context, keys output.RaceInternalKeys) (*entities.RaceWithResults, error) {
			gotKeys = keys
			return race, nil
		}
		svc := NewRaceResultService(NewFakeLookupRepository(), races, nil, nil)

		got, err := svc.ResolveRace(ctx, "evt", "cat", "gen", "len")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "internal-evt", gotKeys.Event)
		assert.Equal(t, "internal-len", gotKeys.Length)
		places := make([]int, 0, len(got.RaceResults))
		for _, rr := range got.RaceResults {
			places = append(places, rr.Place)
		}
		assert.Equal(t, []int{1, 2, 3}, places)
	})

	t.Run("points survive sorting", func(t *testing.T) {
		race := testutil.NewDataGenerator(10).RaceWithResults(2, 1)
		hundred, fifty := 100, 50
		race.RaceResults[0].Points = &fifty
		race.RaceResults[1].Points = &hundred
		races := NewFakeRaceRepository()
		races.FindWithResultsFunc = func(context.Context, output.RaceInternalKeys) (*entities.RaceWithResults, error) {
			return race, nil
		}

		got, err := NewRaceResultService(NewFakeLookupRepository(), races, nil, nil).ResolveRace(ctx, "e", "c", "g", "l")

		require.NoError(t, err)
		assert.Equal(t, 100, *got.RaceResults[0].Points)
		assert.Equal(t, 50, *got.RaceResults[1].Points)
		assert.Nil(t, got.RaceResults[0].RankingPoint)
	})

	t.Run("unknown category never queries races", func(t *testing.T) {
		lookups := NewFakeLookupRepository()
		lookups.RaceCategoryKeyFunc = notFound
		races := NewFakeRaceRepository()

		got, err := NewRaceResultService(lookups, races, nil, nil).ResolveRace(ctx, "evt", "missing", "gen", "len")

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Empty(t, races.Trace())
	})

	t.Run("no race for the combination", func(t *testing.T) {
		races := NewFakeRaceRepository()

		got, err := NewRaceResultService(NewFakeLookupRepository(), races, nil, nil).ResolveRace(ctx, "evt", "cat", "gen", "len")

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, []string{"FindWithResults"}, races.Trace())
	})

	t.Run("storage failure is an error", func(t *testing.T) {
		boom := errors.New("relation fetch failed")
		races := NewFakeRaceRepository()
		races.FindWithResultsFunc = func(context.Context, output.RaceInternalKeys) (*entities.RaceWithResults, error) {
			return nil, boom
		}

		got, err := NewRaceResultService(NewFakeLookupRepository(), races, nil, nil).ResolveRace(ctx, "evt", "cat", "gen", "len")

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "ResolveRace")
		assert.Nil(t, got)
	})
}

func TestRaceResultService_RaceResultsForCyclist(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		races := NewFakeRaceRepository()

		got, err := NewRaceResultService(NewFakeLookupRepository(), races, nil, nil).RaceResultsForCyclist(ctx, "")

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Empty(t, races.Trace())
	})

	t.Run("unknown cyclist", func(t *testing.T) {
		races := NewFakeRaceRepository()
		races.FindCyclistResultsFunc = func(context.Context, string) ([]entities.CyclistRaceResult, error) {
			return nil, domain.ErrNotFound
		}

		got, err := NewRaceResultService(NewFakeLookupRepository(), races, nil, nil).RaceResultsForCyclist(ctx, "ghost")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("cyclist without results", func(t *testing.T) {
		got, err := NewRaceResultService(NewFakeLookupRepository(), NewFakeRaceRepository(), nil, nil).RaceResultsForCyclist(ctx, "cyc")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSortByPlace_Stable(t *testing.T) {
	results := []entities.RaceResultWithCyclist{
		{RaceResult: entities.RaceResult{ID: "b", Place: 2}},
		{RaceResult: entities.RaceResult{ID: "a1", Place: 1}},
		{RaceResult: entities.RaceResult{ID: "a2", Place: 1}},
	}

	sortByPlace(results)

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a1", "a2", "b"}, ids)
	assert.True(t, slices.IsSortedFunc(results, func(a, b entities.RaceResultWithCyclist) int { return a.Place - b.Place }))
}
