package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/techmaster-vietnam/portfolio/models"
)

type page struct {
	Items []string `json:"items"`
	Total int64    `json:"total"`
}

// failingStore giả lập cache store không khả dụng
type failingStore struct{ NoopStore }

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("down")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("down")
}

func captureReadErrors(t *testing.T) *[]string {
	t.Helper()
	ops := &[]string{}
	previous := readErrorReporter
	readErrorReporter = func(err error, op, key string) {
		*ops = append(*ops, op)
	}
	t.Cleanup(func() { readErrorReporter = previous })
	return ops
}

func TestGetOrLoad_CachesLoaderResult(t *testing.T) {
	store, err := NewRistrettoStore(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	calls := 0
	load := func() (page, error) {
		calls++
		return page{Items: []string{"a", "b"}, Total: 2}, nil
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		got, err := GetOrLoad(ctx, store, "portfolio:projects:initial", time.Minute, load)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got.Total != 2 || len(got.Items) != 2 {
			t.Errorf("Unexpected value %+v", got)
		}
	}
	if calls != 1 {
		t.Errorf("Expected loader to be called once, got %d", calls)
	}

	_ = store.Evict(ctx, "portfolio:projects:initial")
	if _, err := GetOrLoad(ctx, store, "portfolio:projects:initial", time.Minute, load); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("Expected reload after eviction, got %d calls", calls)
	}
}

func TestGetOrLoad_LoaderErrorNotCached(t *testing.T) {
	store, err := NewRistrettoStore(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	loadErr := errors.New("db down")
	_, err = GetOrLoad(context.Background(), store, "k", time.Minute, func() (page, error) {
		return page{}, loadErr
	})
	if !errors.Is(err, loadErr) {
		t.Fatalf("Expected loader error, got %v", err)
	}
	if _, found, _ := store.Get(context.Background(), "k"); found {
		t.Errorf("Expected nothing cached after loader error")
	}
}

func TestGetOrLoad_StoreFailureFallsBackToLoader(t *testing.T) {
	ops := captureReadErrors(t)

	got, err := GetOrLoad(context.Background(), failingStore{}, "k", time.Minute, func() (page, error) {
		return page{Total: 5}, nil
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Total != 5 {
		t.Errorf("Expected loader value, got %+v", got)
	}
	if len(*ops) != 2 || (*ops)[0] != "get" || (*ops)[1] != "set" {
		t.Errorf("Expected get and set failures to be reported, got %v", *ops)
	}
}

func TestGetOrLoad_CorruptEntryIsReloaded(t *testing.T) {
	ops := captureReadErrors(t)
	store, err := NewRistrettoStore(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	_ = store.Set(ctx, "k", []byte("not-json"), time.Minute)

	got, err := GetOrLoad(ctx, store, "k", time.Minute, func() (page, error) {
		return page{Total: 1}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != 1 {
		t.Errorf("Expected reloaded value, got %+v", got)
	}
	if len(*ops) != 1 || (*ops)[0] != "decode" {
		t.Errorf("Expected decode failure to be reported, got %v", *ops)
	}
}

func TestGetOrLoadGuarded_SkipsSetWhenInvalidatedDuringLoad(t *testing.T) {
	store, err := NewRistrettoStore(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	keys := NewKeys("portfolio:")
	inv := NewInvalidator(store, keys)
	ctx := context.Background()
	key := keys.BlogsRecent()

	calls := 0
	staleLoad := func() (page, error) {
		calls++
		// Một write commit và invalidate trong lúc read đang load dữ liệu cũ
		inv.OnBlogPostChanged(ctx, &models.BlogPost{Slug: "new-post"})
		return page{Items: []string{"old"}, Total: 1}, nil
	}

	got, err := GetOrLoadGuarded(ctx, store, inv.Generation(), key, time.Minute, staleLoad)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Total != 1 {
		t.Errorf("Expected loader result to be returned, got %+v", got)
	}
	if _, found, _ := store.Get(ctx, key); found {
		t.Fatal("Expected stale result not to be cached after invalidation")
	}

	freshLoad := func() (page, error) {
		calls++
		return page{Items: []string{"new-post", "old"}, Total: 2}, nil
	}
	if _, err := GetOrLoadGuarded(ctx, store, inv.Generation(), key, time.Minute, freshLoad); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := store.Get(ctx, key); !found {
		t.Error("Expected result loaded without concurrent invalidation to be cached")
	}
	if calls != 2 {
		t.Errorf("Expected 2 loader calls, got %d", calls)
	}
}

func TestInvalidator_AdvancesGeneration(t *testing.T) {
	inv := NewInvalidator(NoopStore{}, NewKeys(""))
	before := inv.Generation().Current()

	inv.OnExperienceChanged(context.Background(), &models.Experience{Slug: "acme"})
	inv.OnExperienceChanged(context.Background(), nil)

	if got := inv.Generation().Current(); got != before+1 {
		t.Errorf("Expected generation %d after one invalidation, got %d", before+1, got)
	}
}
