package aliasmanagement

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
	"github.com/AntonioJCosta/nickurl/internal/core/testutil"
)

func TestNewService(t *testing.T) {
	t.Run("should return a service if aliasStore is not nil", func(t *testing.T) {
		svc := NewService(&testutil.MockAliasStore{}, nil)
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic if aliasStore is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil aliasStore")
			}
		}()
		_ = NewService(nil, nil)
	})
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name        string
		seed        []alias.Record
		alias       string
		pattern     string
		want        ports.Result
		wantPattern string
	}{
		{
			name:        "success - scheme added",
			alias:       "yt <$1>",
			pattern:     "youtube.com/results?search_query=<$1>",
			want:        ports.Result{Success: true, Message: "Success"},
			wantPattern: "https://youtube.com/results?search_query=<$1>",
		},
		{
			name:        "success - explicit scheme kept",
			alias:       "local <$1>",
			pattern:     "http://localhost:8080/<$1>",
			want:        ports.Result{Success: true, Message: "Success"},
			wantPattern: "http://localhost:8080/<$1>",
		},
		{
			name:        "success - scheme anywhere in pattern kept",
			alias:       "wb <$&>",
			pattern:     "web.archive.org/web/https://<$&>",
			want:        ports.Result{Success: true, Message: "Success"},
			wantPattern: "web.archive.org/web/https://<$&>",
		},
		{
			name:    "failure - count mismatch",
			alias:   "g <$1> <$2>",
			pattern: "https://x?q=<$1>",
			want:    ports.Result{Message: "Alias 'g <$1> <$2>' and pattern 'https://x?q=<$1>' do not match. Expecting 1 more token(s)."},
		},
		{
			name:    "failure - duplicate alias",
			seed:    []alias.Record{{Alias: "yt <$1>", Pattern: "https://youtube.com/<$1>"}},
			alias:   "yt <$1>",
			pattern: "youtube.com/<$1>",
			want:    ports.Result{Message: "Alias 'yt <$1>' already exists"},
		},
		{
			name:    "failure - second catch-all",
			seed:    []alias.Record{{Alias: "g <$&>", Pattern: "https://www.google.com/search?q=<$&>"}},
			alias:   "g <$1> <$2> <$&>",
			pattern: "x.com/<$1>/<$2>?q=<$&>",
			want:    ports.Result{Message: "The '<$&>' token must be unique across all aliases. Please check all 'g' aliases and determine where the '<$&>' token should be."},
		},
		{
			name:    "failure - empty alias",
			alias:   "",
			pattern: "x.com",
			want:    ports.Result{Message: "Alias cannot be empty."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMemoryAliasStore(tt.seed...)
			svc := NewService(store, nil)

			got := svc.Create(context.Background(), tt.alias, tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Create() = %+v, want %+v", got, tt.want)
			}

			records, _ := store.ListAll(context.Background())
			if !tt.want.Success {
				if len(records) != len(tt.seed) {
					t.Errorf("store holds %d records after rejection, want %d", len(records), len(tt.seed))
				}
				return
			}
			last := records[len(records)-1]
			if last.Alias != tt.alias || last.Pattern != tt.wantPattern {
				t.Errorf("stored %+v, want alias %q pattern %q", last, tt.alias, tt.wantPattern)
			}
		})
	}
}

func TestService_Create_StoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		mock    *testutil.MockAliasStore
		wantMsg string
	}{
		{
			name: "sibling lookup fails",
			mock: &testutil.MockAliasStore{
				FindSiblingsFunc: func(ctx context.Context, leadingWord string) ([]alias.Record, error) {
					return nil, errors.New("disk I/O error")
				},
			},
			wantMsg: "An error occurred while saving the alias",
		},
		{
			name: "insert violates constraint",
			mock: &testutil.MockAliasStore{
				InsertFunc: func(ctx context.Context, aliasPattern, pattern string) (int64, error) {
					return 0, fmt.Errorf("insert: %w", ports.ErrConstraintViolation)
				},
			},
			wantMsg: "The alias could not be saved because it violates a storage constraint",
		},
		{
			name: "insert fails",
			mock: &testutil.MockAliasStore{
				InsertFunc: func(ctx context.Context, aliasPattern, pattern string) (int64, error) {
					return 0, fmt.Errorf("insert: %w", ports.ErrSchema)
				},
			},
			wantMsg: "An error occurred while saving the alias",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewService(tt.mock, nil).Create(context.Background(), "yt <$1>", "yt.com/<$1>")
			if got.Success || got.Message != tt.wantMsg {
				t.Errorf("Create() = %+v, want failure %q", got, tt.wantMsg)
			}
		})
	}
}

func TestService_Create_ConcurrentCatchAlls(t *testing.T) {
	store := testutil.NewMemoryAliasStore()
	svc := NewService(store, nil)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]ports.Result, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Distinct positional prefixes give every candidate a distinct
			// alias and token count.
			aliasPattern := "s"
			pattern := "s.com"
			for k := 0; k < i%9; k++ {
				aliasPattern += fmt.Sprintf(" <$%d>", k)
				pattern += fmt.Sprintf("/<$%d>", k)
			}
			aliasPattern += " <$&>"
			pattern += fmt.Sprintf("?q=<$&>&w=%d", i)
			results[i] = svc.Create(context.Background(), aliasPattern, pattern)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, r := range results {
		if r.Success {
			successes++
		}
	}
	if successes != 1 {
		t.Errorf("%d concurrent catch-all creates succeeded, want exactly 1", successes)
	}
	records, _ := store.ListAll(context.Background())
	if len(records) != 1 {
		t.Errorf("store holds %d records, want 1", len(records))
	}
}

func TestService_Update(t *testing.T) {
	seed := []alias.Record{
		{ID: 1, Alias: "g <$&>", Pattern: "https://www.google.com/search?q=<$&>"},
		{ID: 2, Alias: "g <$1>", Pattern: "https://g.com/<$1>"},
		{ID: 3, Alias: "yt <$1>", Pattern: "https://youtube.com/<$1>"},
	}

	tests := []struct {
		name    string
		id      int64
		alias   string
		pattern string
		want    ports.Result
	}{
		{
			name:    "success - rewrite catch-all pattern",
			id:      1,
			alias:   "g <$&>",
			pattern: "duckduckgo.com/?q=<$&>",
			want:    ports.Result{Success: true, Message: "Success"},
		},
		{
			name:    "success - move to another group",
			id:      3,
			alias:   "ytm <$1>",
			pattern: "music.youtube.com/search?q=<$1>",
			want:    ports.Result{Success: true, Message: "Success"},
		},
		{
			name:    "failure - collides with sibling",
			id:      3,
			alias:   "g <$1>",
			pattern: "g.com/<$1>",
			want:    ports.Result{Message: "Alias 'g <$1>' already exists"},
		},
		{
			name:    "failure - unknown id",
			id:      99,
			alias:   "new <$1>",
			pattern: "new.com/<$1>",
			want:    ports.Result{Message: "No alias with id 99"},
		},
		{
			name:    "failure - invalid id",
			id:      0,
			alias:   "new <$1>",
			pattern: "new.com/<$1>",
			want:    ports.Result{Message: "Invalid alias id 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(testutil.NewMemoryAliasStore(seed...), nil)
			got := svc.Update(context.Background(), tt.id, tt.alias, tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Update() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestService_Update_StoresScheme(t *testing.T) {
	store := testutil.NewMemoryAliasStore(alias.Record{ID: 1, Alias: "yt <$1>", Pattern: "https://youtube.com/<$1>"})
	svc := NewService(store, nil)

	if got := svc.Update(context.Background(), 1, "yt <$1>", "invidious.io/search?q=<$1>"); !got.Success {
		t.Fatalf("Update() = %+v, want success", got)
	}
	records, _ := store.ListAll(context.Background())
	if records[0].Pattern != "https://invidious.io/search?q=<$1>" {
		t.Errorf("stored pattern = %q", records[0].Pattern)
	}
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name string
		mock *testutil.MockAliasStore
		want ports.Result
	}{
		{
			name: "success",
			mock: &testutil.MockAliasStore{
				DeleteByIDFunc: func(ctx context.Context, id int64) error { return nil },
			},
			want: ports.Result{Success: true, Message: "Success"},
		},
		{
			name: "failure - not found",
			mock: &testutil.MockAliasStore{
				DeleteByIDFunc: func(ctx context.Context, id int64) error {
					return fmt.Errorf("delete: %w", ports.ErrNotFound)
				},
			},
			want: ports.Result{Message: "No alias with id 5"},
		},
		{
			name: "failure - store error",
			mock: &testutil.MockAliasStore{
				DeleteByIDFunc: func(ctx context.Context, id int64) error {
					return errors.New("database is locked")
				},
			},
			want: ports.Result{Message: "An error occurred while deleting the alias"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewService(tt.mock, nil).Delete(context.Background(), 5)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Delete() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestService_List(t *testing.T) {
	t.Run("returns stored records", func(t *testing.T) {
		seed := []alias.Record{
			{ID: 1, Alias: "g <$&>", Pattern: "https://www.google.com/search?q=<$&>"},
			{ID: 2, Alias: "yt <$1>", Pattern: "https://youtube.com/<$1>"},
		}
		got, err := NewService(testutil.NewMemoryAliasStore(seed...), nil).List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if !reflect.DeepEqual(got, seed) {
			t.Errorf("List() = %+v, want %+v", got, seed)
		}
	})

	t.Run("wraps store error", func(t *testing.T) {
		storeErr := errors.New("no such table: alias")
		mock := &testutil.MockAliasStore{
			ListAllFunc: func(ctx context.Context) ([]alias.Record, error) { return nil, storeErr },
		}
		_, err := NewService(mock, nil).List(context.Background())
		if !errors.Is(err, storeErr) {
			t.Errorf("List() error = %v, want wrapped %v", err, storeErr)
		}
	})
}
