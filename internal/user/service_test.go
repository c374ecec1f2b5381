package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/user"
)

type fakeRepo struct {
	users  map[int64]*user.User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[int64]*user.User)}
}

func (r *fakeRepo) Create(_ context.Context, u *user.User) error {
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *fakeRepo) List(_ context.Context) ([]*user.User, error) {
	result := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes email", func(t *testing.T) {
		s := user.NewService(newFakeRepo())
		u, err := s.Create(ctx, " Alice ", " Alice@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.Name)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.NotZero(t, u.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		s := user.NewService(newFakeRepo())
		_, err := s.Create(ctx, "Alice", "alice@example.com")
		require.NoError(t, err)

		_, err = s.Create(ctx, "Alicia", "ALICE@example.com")
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, s user.Service) *user.User {
		t.Helper()
		u, err := s.Create(ctx, "Alice", "alice@example.com")
		require.NoError(t, err)
		return u
	}

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		s := user.NewService(newFakeRepo())
		u := seed(t, s)

		name := "Alicia"
		updated, err := s.Update(ctx, u.ID, user.UpdateRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", updated.Name)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("email taken by someone else", func(t *testing.T) {
		s := user.NewService(newFakeRepo())
		u := seed(t, s)
		_, err := s.Create(ctx, "Bob", "bob@example.com")
		require.NoError(t, err)

		email := "bob@example.com"
		_, err = s.Update(ctx, u.ID, user.UpdateRequest{Email: &email})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})

	t.Run("re-submitting own email is allowed", func(t *testing.T) {
		s := user.NewService(newFakeRepo())
		u := seed(t, s)

		email := "Alice@Example.com"
		updated, err := s.Update(ctx, u.ID, user.UpdateRequest{Email: &email})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		s := user.NewService(newFakeRepo())
		name := "Nobody"
		_, err := s.Update(ctx, 999, user.UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := user.NewService(repo)

	u, err := s.Create(ctx, "Alice", "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, u.ID))

	_, err = s.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)

	// The freed email can be reused.
	_, err = s.Create(ctx, "Alice II", "alice@example.com")
	assert.NoError(t, err)
}
