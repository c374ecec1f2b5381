package request_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/item"
	"shareit/internal/request"
	"shareit/internal/user"
)

type fakeRepo struct {
	requests map[int64]*request.Request
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{requests: make(map[int64]*request.Request)}
}

func (r *fakeRepo) Create(_ context.Context, req *request.Request) error {
	r.nextID++
	req.ID = r.nextID
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*request.Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, request.ErrNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *fakeRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.requests[id]
	return ok, nil
}

func (r *fakeRepo) ListByRequestor(_ context.Context, requestorID int64) ([]*request.Request, error) {
	return r.list(func(req *request.Request) bool { return req.RequestorID == requestorID }), nil
}

func (r *fakeRepo) ListOthers(_ context.Context, requestorID int64, offset, limit int) ([]*request.Request, error) {
	all := r.list(func(req *request.Request) bool { return req.RequestorID != requestorID })
	if offset >= len(all) {
		return []*request.Request{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeRepo) list(match func(*request.Request) bool) []*request.Request {
	var result []*request.Request
	for _, req := range r.requests {
		if match(req) {
			clone := *req
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Created.After(result[j].Created) })
	return result
}

type fakeUsers struct {
	user.Service
	users map[int64]*user.User
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

// fakeItems only serves ListByRequest; the request service needs nothing
// else from item storage.
type fakeItems struct {
	item.Repository
	byRequest map[int64][]*item.Item
}

func (f *fakeItems) ListByRequest(_ context.Context, requestID int64) ([]*item.Item, error) {
	items, ok := f.byRequest[requestID]
	if !ok {
		return []*item.Item{}, nil
	}
	return items, nil
}

type fixture struct {
	repo    *fakeRepo
	items   *fakeItems
	service request.Service
}

const (
	requestorID = int64(1)
	otherID     = int64(2)
)

func newFixture() *fixture {
	repo := newFakeRepo()
	items := &fakeItems{byRequest: make(map[int64][]*item.Item)}
	users := &fakeUsers{users: map[int64]*user.User{
		requestorID: {ID: requestorID, Name: "requestor"},
		otherID:     {ID: otherID, Name: "other"},
	}}
	return &fixture{
		repo:    repo,
		items:   items,
		service: request.NewService(repo, users, items),
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success stamps created", func(t *testing.T) {
		f := newFixture()
		req, err := f.service.Create(ctx, requestorID, "need a drill")
		require.NoError(t, err)
		assert.NotZero(t, req.ID)
		assert.Equal(t, requestorID, req.RequestorID)
		assert.WithinDuration(t, time.Now(), req.Created, time.Minute)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.Create(ctx, 999, "need a drill")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	req, err := f.service.Create(ctx, requestorID, "need a drill")
	require.NoError(t, err)
	f.items.byRequest[req.ID] = []*item.Item{{ID: 10, Name: "drill", RequestID: &req.ID}}

	t.Run("any known user may read, with answering items", func(t *testing.T) {
		for _, uid := range []int64{requestorID, otherID} {
			details, err := f.service.GetByID(ctx, req.ID, uid)
			require.NoError(t, err)
			assert.Equal(t, req.ID, details.ID)
			require.Len(t, details.Items, 1)
			assert.Equal(t, int64(10), details.Items[0].ID)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := f.service.GetByID(ctx, 999, requestorID)
		assert.ErrorIs(t, err, request.ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.service.GetByID(ctx, req.ID, 999)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestListOwn(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	first, err := f.service.Create(ctx, requestorID, "need a drill")
	require.NoError(t, err)
	_, err = f.service.Create(ctx, otherID, "need a ladder")
	require.NoError(t, err)

	own, err := f.service.ListOwn(ctx, requestorID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, first.ID, own[0].ID)
	assert.NotNil(t, own[0].Items)
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	base := time.Now()
	for i := 0; i < 5; i++ {
		req := &request.Request{
			Description: "needed",
			RequestorID: otherID,
			Created:     base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, f.repo.Create(ctx, req))
	}
	mine := &request.Request{Description: "my own", RequestorID: requestorID, Created: base}
	require.NoError(t, f.repo.Create(ctx, mine))

	t.Run("excludes own requests, newest first", func(t *testing.T) {
		all, err := f.service.ListAll(ctx, requestorID, 0, 10)
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i, req := range all {
			assert.NotEqual(t, requestorID, req.RequestorID)
			if i > 0 {
				assert.False(t, all[i-1].Created.Before(req.Created))
			}
		}
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := f.service.ListAll(ctx, requestorID, 2, 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)

		tail, err := f.service.ListAll(ctx, requestorID, 4, 10)
		require.NoError(t, err)
		assert.Len(t, tail, 1)
	})

	t.Run("defaults applied to bad paging values", func(t *testing.T) {
		all, err := f.service.ListAll(ctx, requestorID, -3, 0)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})
}
