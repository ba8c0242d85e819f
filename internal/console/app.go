// Package console holds the client-side application state for the terminal
// UI: the current view, the in-memory record list and transient notices.
// All rendering and input live in cmd/console; this package is pure state
// transitions so the flows stay testable.
package console

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/userhub/user-service/internal/users"
	"github.com/userhub/user-service/pkg/client"
)

// API is the slice of the data-fetch layer the container needs.
// *client.Client satisfies it.
type API interface {
	ListUsers(ctx context.Context) ([]client.User, error)
	CreateUser(ctx context.Context, in users.Input) (*client.User, error)
	UpdateUser(ctx context.Context, id string, p client.Patch) (*client.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// View is the current UI mode, modeled as a tagged variant so that
// "updating without a selected record" cannot be represented.
type View interface{ isView() }

// Viewing shows the record list.
type Viewing struct{}

// Creating shows an empty record form.
type Creating struct{}

// Updating shows the form pre-filled from the selected record.
type Updating struct{ Selected client.User }

func (Viewing) isView()  {}
func (Creating) isView() {}
func (Updating) isView() {}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// noticeDuration is how long a transient notice stays visible.
const noticeDuration = 5 * time.Second

// Notice is a transient, auto-dismissing message.
type Notice struct {
	Text      string
	Kind      NoticeKind
	expiresAt time.Time
}

// ErrBusy is returned when a submit is attempted while another one is still
// in flight.
var ErrBusy = errors.New("a submission is already in flight")

// App is the UI container: view state, cached record list and active notice.
// It is session-local; the list is populated by Load and discarded with the
// process. Not safe for concurrent use — the console drives it from a single
// goroutine.
type App struct {
	api    API
	view   View
	users  []client.User
	notice *Notice
	busy   bool
	now    func() time.Time
}

func NewApp(api API) *App {
	return &App{api: api, view: Viewing{}, now: time.Now}
}

func (a *App) View() View           { return a.view }
func (a *App) Users() []client.User { return a.users }

// Notice returns the active notice, or nil once it has expired.
func (a *App) Notice() *Notice {
	if a.notice == nil || a.now().After(a.notice.expiresAt) {
		return nil
	}
	return a.notice
}

func (a *App) post(kind NoticeKind, text string) {
	a.notice = &Notice{Text: text, Kind: kind, expiresAt: a.now().Add(noticeDuration)}
}

// Load fetches the full record list. Called once on startup (blocking) and
// available as an explicit refresh. A failure leaves the previous snapshot.
func (a *App) Load(ctx context.Context) error {
	list, err := a.api.ListUsers(ctx)
	if err != nil {
		a.post(NoticeError, "Error fetching users: "+err.Error())
		return err
	}
	a.users = list
	return nil
}

// StartCreate switches to the create form. No selection required.
func (a *App) StartCreate() {
	a.view = Creating{}
}

// StartEdit selects the record with the given id and switches to the update
// form. An unknown id posts an error notice and stays in Viewing.
func (a *App) StartEdit(id string) bool {
	for _, u := range a.users {
		if u.ID == id {
			a.view = Updating{Selected: u}
			return true
		}
	}
	a.post(NoticeError, "No user selected for editing")
	return false
}

// Cancel abandons the current form and returns to the list.
func (a *App) Cancel() {
	a.view = Viewing{}
}

// SubmitCreate validates the form advisorily, then creates the record. On
// success the new record is prepended to the list and the view returns to
// Viewing; on failure the view stays in Creating and the list is untouched.
func (a *App) SubmitCreate(ctx context.Context, form users.Input) error {
	if a.busy {
		return ErrBusy
	}
	if ve := users.ValidateInput(form); ve != nil {
		a.post(NoticeError, strings.Join(ve.Messages(), ", "))
		return ve
	}

	a.busy = true
	created, err := a.api.CreateUser(ctx, form)
	a.busy = false
	if err != nil {
		a.post(NoticeError, "Error creating user: "+err.Error())
		return err
	}

	a.users = append([]client.User{*created}, a.users...)
	a.view = Viewing{}
	a.post(NoticeSuccess, "User created successfully!")
	return nil
}

// SubmitUpdate validates the edited form and updates the selected record.
// On success the matching list entry is replaced in place; on failure the
// view stays in Updating.
func (a *App) SubmitUpdate(ctx context.Context, form users.Input) error {
	upd, ok := a.view.(Updating)
	if !ok {
		return errors.New("not in updating view")
	}
	if a.busy {
		return ErrBusy
	}
	if ve := users.ValidateInput(form); ve != nil {
		a.post(NoticeError, strings.Join(ve.Messages(), ", "))
		return ve
	}

	form = form.Trimmed()
	patch := client.Patch{
		Name:        &form.Name,
		Address:     &form.Address,
		PhoneNumber: &form.PhoneNumber,
		CompanyName: &form.CompanyName,
	}

	a.busy = true
	updated, err := a.api.UpdateUser(ctx, upd.Selected.ID, patch)
	a.busy = false
	if err != nil {
		a.post(NoticeError, "Error updating user: "+err.Error())
		return err
	}

	for i := range a.users {
		if a.users[i].ID == updated.ID {
			a.users[i] = *updated
			break
		}
	}
	a.view = Viewing{}
	a.post(NoticeSuccess, "User updated successfully!")
	return nil
}

// Delete removes a record. Only available from the list view. On success the
// record disappears from the cached list.
func (a *App) Delete(ctx context.Context, id string) error {
	if _, ok := a.view.(Viewing); !ok {
		return errors.New("delete is only available from the list view")
	}
	if err := a.api.DeleteUser(ctx, id); err != nil {
		a.post(NoticeError, "Error deleting user: "+err.Error())
		return err
	}
	filtered := a.users[:0]
	for _, u := range a.users {
		if u.ID != id {
			filtered = append(filtered, u)
		}
	}
	a.users = filtered
	a.post(NoticeSuccess, "User deleted successfully!")
	return nil
}
