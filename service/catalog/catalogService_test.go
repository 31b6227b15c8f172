package catalog

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func tempDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// refStore is a stateful repo mock: natural keys map to ids, inserts are counted.
type refStore struct {
	authors    map[string]int64
	genres     map[string]int64
	publishers map[string]int64
	nextID     int64

	authorInserts    int
	genreInserts     int
	publisherInserts int
	bookInserts      int

	lastBookCopies int
}

var _ Repo = (*refStore)(nil)

func newRefStore() *refStore {
	return &refStore{
		authors:    map[string]int64{},
		genres:     map[string]int64{},
		publishers: map[string]int64{},
		nextID:     100,
	}
}

func (f *refStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *refStore) FindAuthor(ctx context.Context, tx *sql.Tx, first, last string) (int64, error) {
	if id, ok := f.authors[first+" "+last]; ok {
		return id, nil
	}
	return 0, sql.ErrNoRows
}

func (f *refStore) InsertAuthor(ctx context.Context, tx *sql.Tx, first, last string) (int64, error) {
	f.authorInserts++
	id := f.id()
	f.authors[first+" "+last] = id
	return id, nil
}

func (f *refStore) FindGenre(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	if id, ok := f.genres[name]; ok {
		return id, nil
	}
	return 0, sql.ErrNoRows
}

func (f *refStore) InsertGenre(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	f.genreInserts++
	id := f.id()
	f.genres[name] = id
	return id, nil
}

func (f *refStore) FindPublisher(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	if id, ok := f.publishers[name]; ok {
		return id, nil
	}
	return 0, sql.ErrNoRows
}

func (f *refStore) InsertPublisher(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	f.publisherInserts++
	id := f.id()
	f.publishers[name] = id
	return id, nil
}

func (f *refStore) InsertBook(ctx context.Context, tx *sql.Tx, title string, authorID, genreID, publisherID int64, copies int) (int64, error) {
	f.bookInserts++
	f.lastBookCopies = copies
	return f.id(), nil
}

func TestSplitAuthorName(t *testing.T) {
	first, last, err := SplitAuthorName("Frank Herbert")
	require.NoError(t, err)
	require.Equal(t, "Frank", first)
	require.Equal(t, "Herbert", last)

	// Middle names collapse onto the first/last natural key.
	first, last, err = SplitAuthorName("Gabriel Garcia Marquez")
	require.NoError(t, err)
	require.Equal(t, "Gabriel", first)
	require.Equal(t, "Marquez", last)

	_, _, err = SplitAuthorName("Homer")
	require.Equal(t, ErrMalformedAuthor, Code(err))

	_, _, err = SplitAuthorName("   ")
	require.Equal(t, ErrMalformedAuthor, Code(err))
}

func TestDonate_Validation(t *testing.T) {
	s := New(tempDB(t), newRefStore())
	ctx := context.Background()

	_, err := s.Donate(ctx, "", "Frank Herbert", "Scifi", "Ace")
	require.Equal(t, ErrBadInput, Code(err))

	_, err = s.Donate(ctx, "Dune", "Herbert", "Scifi", "Ace")
	require.Equal(t, ErrMalformedAuthor, Code(err))
}

func TestDonate_CreatesMissingRefs(t *testing.T) {
	f := newRefStore()
	s := New(tempDB(t), f)

	bookID, err := s.Donate(context.Background(), "Dune", "Frank Herbert", "Scifi", "Ace")
	require.NoError(t, err)
	require.NotZero(t, bookID)

	require.Equal(t, 1, f.authorInserts)
	require.Equal(t, 1, f.genreInserts)
	require.Equal(t, 1, f.publisherInserts)
	require.Equal(t, 1, f.bookInserts)
	require.Equal(t, 1, f.lastBookCopies)
}

// A second donation with the same names reuses every reference row and only
// adds a book.
func TestDonate_DedupsRefs(t *testing.T) {
	f := newRefStore()
	s := New(tempDB(t), f)
	ctx := context.Background()

	_, err := s.Donate(ctx, "Dune", "Frank Herbert", "Scifi", "Ace")
	require.NoError(t, err)
	_, err = s.Donate(ctx, "Dune Messiah", "Frank Herbert", "Scifi", "Ace")
	require.NoError(t, err)

	require.Equal(t, 1, f.authorInserts)
	require.Equal(t, 1, f.genreInserts)
	require.Equal(t, 1, f.publisherInserts)
	require.Equal(t, 2, f.bookInserts)
}

func TestResolveOrCreate(t *testing.T) {
	f := newRefStore()
	s := New(tempDB(t), f)
	ctx := context.Background()

	id1, err := s.ResolveOrCreateGenre(ctx, "Scifi")
	require.NoError(t, err)
	id2, err := s.ResolveOrCreateGenre(ctx, "Scifi")
	require.NoError(t, err)
	require.Equal(t, id1, id2)
	require.Equal(t, 1, f.genreInserts)

	_, err = s.ResolveOrCreateAuthor(ctx, "", "Herbert")
	require.Equal(t, ErrBadInput, Code(err))
}
