package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-service/internal/domains/author/model"
)

// fakeAuthorRepo is an in-memory stand-in for the Postgres repository.
type fakeAuthorRepo struct {
	authors map[int64]*model.Author
	nextID  int64

	createErr error
	existsErr error
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: map[int64]*model.Author{}, nextID: 1}
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *a
	created.ID = f.nextID
	f.nextID++
	f.authors[created.ID] = &created
	return &created, nil
}

func (f *fakeAuthorRepo) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return a, nil
}

func (f *fakeAuthorRepo) List(ctx context.Context) ([]model.Author, error) {
	out := make([]model.Author, 0, len(f.authors))
	for _, a := range f.authors {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAuthorRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.authors[id]
	return ok, nil
}

func (f *fakeAuthorRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, a := range f.authors {
		if a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateAuthorTrimsName(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	created, err := svc.Create(context.Background(), &model.CreateAuthorRequest{Name: "  Jane Smith  "})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", created.Name)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateAuthorNameLimitCountsCharacters(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())
	ctx := context.Background()

	// 200 characters but 400 bytes; must pass a character-based limit.
	created, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: strings.Repeat("é", 200)})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 200), created.Name)

	_, err = svc.Create(ctx, &model.CreateAuthorRequest{Name: strings.Repeat("é", model.MaxNameLength+1)})
	assert.ErrorIs(t, err, model.ErrInvalidName)
}

func TestCreateAuthorRejectsBlankName(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{Name: "   "})
	assert.ErrorIs(t, err, model.ErrInvalidName)
}

func TestCreateAuthorRejectsDuplicateName(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: "Jane Smith"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.CreateAuthorRequest{Name: "Jane Smith"})
	assert.ErrorIs(t, err, model.ErrDuplicateName)

	// Trimming happens before the uniqueness check, so padded whitespace
	// is still the same name.
	_, err = svc.Create(ctx, &model.CreateAuthorRequest{Name: " Jane Smith "})
	assert.ErrorIs(t, err, model.ErrDuplicateName)
}

func TestCreateAuthorNameMatchIsCaseSensitive(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: "Jane Smith"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: "jane smith"})
	require.NoError(t, err)
	assert.Equal(t, "jane smith", created.Name)
}

func TestCreateAuthorPropagatesUniquenessCheckFailure(t *testing.T) {
	repo := newFakeAuthorRepo()
	repo.existsErr = errors.New("connection reset")
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{Name: "Jane Smith"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrDuplicateName)
}

func TestGetAuthorByInvalidID(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	_, err := svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	_, err = svc.GetByID(context.Background(), -3)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestGetAuthorByUnknownID(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}
