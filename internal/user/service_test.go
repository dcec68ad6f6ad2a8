package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users map[int64]*AuthorizedUser
	err   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[int64]*AuthorizedUser{}}
}

func (f *fakeRepo) EnsureSchema(ctx context.Context) error { return f.err }

func (f *fakeRepo) Add(ctx context.Context, u *AuthorizedUser) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.users[u.UserID]; ok {
		return 0, errors.New("duplicate key value")
	}
	f.users[u.UserID] = u
	return u.UserID, nil
}

func (f *fakeRepo) Exists(ctx context.Context, userID int64) (bool, int64, error) {
	if f.err != nil {
		return false, 0, f.err
	}
	if _, ok := f.users[userID]; ok {
		return true, userID, nil
	}
	return false, 0, nil
}

func (f *fakeRepo) FindByPhone(ctx context.Context, phone string) (bool, int64, string, error) {
	if f.err != nil {
		return false, 0, "", f.err
	}
	for _, u := range f.users {
		if u.PhoneNumber != nil && *u.PhoneNumber == phone {
			return true, u.UserID, *u.PhoneNumber, nil
		}
	}
	return false, 0, "", nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]*AuthorizedUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*AuthorizedUser
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeRepo) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	if f.err != nil {
		return f.err
	}
	if u, ok := f.users[userID]; ok {
		u.PhoneNumber = &phone
	}
	return nil
}

func TestRegisterThenExists(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	phone := "+100"
	id, ok := svc.Register(ctx, &AuthorizedUser{
		UserID: 123, Username: "alice", FirstName: "A", LastName: "B", PhoneNumber: &phone,
	})
	require.True(t, ok)
	assert.Equal(t, int64(123), id)

	found, gotID := svc.Exists(ctx, 123)
	assert.True(t, found)
	assert.Equal(t, int64(123), gotID)
}

func TestRegisterDuplicateSwallowed(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, ok := svc.Register(ctx, &AuthorizedUser{UserID: 123, Username: "alice"})
	require.True(t, ok)

	id, ok := svc.Register(ctx, &AuthorizedUser{UserID: 123, Username: "alice"})
	assert.False(t, ok)
	assert.Zero(t, id)
	assert.Len(t, repo.users, 1)
}

// любая ошибка хранилища деградирует до «не найден»
func TestExistsFailsClosed(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	svc := NewService(repo)

	found, id := svc.Exists(context.Background(), 123)
	assert.False(t, found)
	assert.Zero(t, id)
}

func TestFindByPhoneFailsClosed(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	svc := NewService(repo)

	found, id, phone := svc.FindByPhone(context.Background(), "+100")
	assert.False(t, found)
	assert.Zero(t, id)
	assert.Empty(t, phone)
}

func TestListAllEmpty(t *testing.T) {
	svc := NewService(newFakeRepo())

	items, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListAllSubstitutesNonePlaceholder(t *testing.T) {
	repo := newFakeRepo()
	repo.users[123] = &AuthorizedUser{UserID: 123, Username: "alice"}
	svc := NewService(repo)

	items, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ListItem{Username: "alice", PhoneNumber: "None"}, items[0])
}
