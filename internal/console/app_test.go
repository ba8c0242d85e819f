package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/userhub/user-service/internal/users"
	"github.com/userhub/user-service/pkg/client"
)

type fakeAPI struct {
	listFn   func(ctx context.Context) ([]client.User, error)
	createFn func(ctx context.Context, in users.Input) (*client.User, error)
	updateFn func(ctx context.Context, id string, p client.Patch) (*client.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]client.User, error) { return f.listFn(ctx) }
func (f *fakeAPI) CreateUser(ctx context.Context, in users.Input) (*client.User, error) {
	return f.createFn(ctx, in)
}
func (f *fakeAPI) UpdateUser(ctx context.Context, id string, p client.Patch) (*client.User, error) {
	return f.updateFn(ctx, id, p)
}
func (f *fakeAPI) DeleteUser(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

func validForm() users.Input {
	return users.Input{
		Name:        "Ann Lee",
		Address:     "1 Main St",
		PhoneNumber: "5551234567",
		CompanyName: "Acme",
	}
}

func seededApp(t *testing.T, api *fakeAPI, seed []client.User) *App {
	t.Helper()
	if api.listFn == nil {
		api.listFn = func(ctx context.Context) ([]client.User, error) { return seed, nil }
	}
	a := NewApp(api)
	require.NoError(t, a.Load(context.Background()))
	return a
}

func TestInitialStateIsViewing(t *testing.T) {
	a := NewApp(&fakeAPI{})
	require.IsType(t, Viewing{}, a.View())
	require.Empty(t, a.Users())
}

func TestFailedCreateStaysInCreating(t *testing.T) {
	api := &fakeAPI{
		createFn: func(ctx context.Context, in users.Input) (*client.User, error) {
			return nil, &client.APIError{Status: 400, Message: "Validation Error", Errors: []string{"Name is required"}}
		},
	}
	a := seededApp(t, api, []client.User{{ID: "a1", Name: "Existing"}})

	a.StartCreate()
	require.IsType(t, Creating{}, a.View())

	err := a.SubmitCreate(context.Background(), validForm())
	require.Error(t, err)
	require.IsType(t, Creating{}, a.View(), "failed create must not leave the form")
	require.Len(t, a.Users(), 1, "list must be unchanged after a failed create")

	n := a.Notice()
	require.NotNil(t, n)
	require.Equal(t, NoticeError, n.Kind)
}

func TestClientSideValidationBlocksSubmit(t *testing.T) {
	called := false
	api := &fakeAPI{
		createFn: func(ctx context.Context, in users.Input) (*client.User, error) {
			called = true
			return nil, nil
		},
	}
	a := seededApp(t, api, nil)
	a.StartCreate()

	form := validForm()
	form.PhoneNumber = "123"
	err := a.SubmitCreate(context.Background(), form)

	var ve *users.ValidationError
	require.ErrorAs(t, err, &ve)
	require.False(t, called, "advisory validation must prevent the network call")
	require.IsType(t, Creating{}, a.View())
}

func TestSuccessfulCreatePrepends(t *testing.T) {
	api := &fakeAPI{
		createFn: func(ctx context.Context, in users.Input) (*client.User, error) {
			return &client.User{ID: "new1", Name: in.Name}, nil
		},
	}
	a := seededApp(t, api, []client.User{{ID: "a1", Name: "Existing"}})

	a.StartCreate()
	require.NoError(t, a.SubmitCreate(context.Background(), validForm()))

	require.IsType(t, Viewing{}, a.View())
	require.Len(t, a.Users(), 2)
	require.Equal(t, "new1", a.Users()[0].ID, "new record is prepended")
	require.Equal(t, NoticeSuccess, a.Notice().Kind)
}

func TestSuccessfulUpdateReplacesInPlace(t *testing.T) {
	api := &fakeAPI{
		updateFn: func(ctx context.Context, id string, p client.Patch) (*client.User, error) {
			return &client.User{ID: id, Name: *p.Name, CompanyName: *p.CompanyName}, nil
		},
	}
	seed := []client.User{{ID: "a1", Name: "First"}, {ID: "a2", Name: "Second"}}
	a := seededApp(t, api, seed)

	require.True(t, a.StartEdit("a2"))
	upd, ok := a.View().(Updating)
	require.True(t, ok)
	require.Equal(t, "a2", upd.Selected.ID)

	form := validForm()
	form.Name = "Second Edited"
	require.NoError(t, a.SubmitUpdate(context.Background(), form))

	require.IsType(t, Viewing{}, a.View())
	require.Len(t, a.Users(), 2)
	require.Equal(t, "First", a.Users()[0].Name)
	require.Equal(t, "Second Edited", a.Users()[1].Name)
}

func TestStartEditUnknownIDStaysViewing(t *testing.T) {
	a := seededApp(t, &fakeAPI{}, []client.User{{ID: "a1"}})

	require.False(t, a.StartEdit("missing"))
	require.IsType(t, Viewing{}, a.View())
	require.Equal(t, NoticeError, a.Notice().Kind)
}

func TestCancelReturnsToViewing(t *testing.T) {
	a := seededApp(t, &fakeAPI{}, []client.User{{ID: "a1"}})

	a.StartCreate()
	a.Cancel()
	require.IsType(t, Viewing{}, a.View())

	require.True(t, a.StartEdit("a1"))
	a.Cancel()
	require.IsType(t, Viewing{}, a.View())
}

func TestDeleteRemovesFromList(t *testing.T) {
	api := &fakeAPI{
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	a := seededApp(t, api, []client.User{{ID: "a1"}, {ID: "a2"}})

	require.NoError(t, a.Delete(context.Background(), "a1"))
	require.Len(t, a.Users(), 1)
	require.Equal(t, "a2", a.Users()[0].ID)
}

func TestDeleteOnlyFromViewing(t *testing.T) {
	a := seededApp(t, &fakeAPI{}, []client.User{{ID: "a1"}})
	a.StartCreate()
	require.Error(t, a.Delete(context.Background(), "a1"))
	require.Len(t, a.Users(), 1)
}

func TestFailedDeleteKeepsList(t *testing.T) {
	api := &fakeAPI{
		deleteFn: func(ctx context.Context, id string) error {
			return errors.New("connection refused")
		},
	}
	a := seededApp(t, api, []client.User{{ID: "a1"}})

	require.Error(t, a.Delete(context.Background(), "a1"))
	require.Len(t, a.Users(), 1)
	require.Equal(t, NoticeError, a.Notice().Kind)
}

func TestNoticeAutoDismisses(t *testing.T) {
	a := seededApp(t, &fakeAPI{}, []client.User{{ID: "a1"}})

	current := time.Now()
	a.now = func() time.Time { return current }

	a.StartEdit("missing") // posts an error notice
	require.NotNil(t, a.Notice())

	current = current.Add(noticeDuration + time.Second)
	require.Nil(t, a.Notice(), "notice must dismiss after its display duration")
}
