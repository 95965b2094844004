package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/attendance"
	"github.com/sitehub/sitehub-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmployeeA = "11111111-1111-4111-8111-111111111111"
	testEmployeeB = "22222222-2222-4222-8222-222222222222"
	testUserID    = "99999999-9999-4999-8999-999999999999"
)

func actorContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": testUserID,
		"email":   "supervisor@example.com",
		"role":    "FIELD_SUPERVISOR",
		"type":    "access",
	})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeSignInRepo struct {
	records map[string]attendance.SignIn
	nextID  int
}

func newFakeSignInRepo() *fakeSignInRepo {
	return &fakeSignInRepo{records: make(map[string]attendance.SignIn)}
}

func (f *fakeSignInRepo) Create(ctx context.Context, s attendance.SignIn) (attendance.SignIn, error) {
	f.nextID++
	s.ID = string(rune('a' + f.nextID - 1))
	s.CreatedAt = time.Now()
	f.records[s.ID] = s
	return s, nil
}

func (f *fakeSignInRepo) GetByID(ctx context.Context, id string) (attendance.SignIn, error) {
	s, ok := f.records[id]
	if !ok {
		return attendance.SignIn{}, attendance.ErrSignInNotFound
	}
	return s, nil
}

func (f *fakeSignInRepo) GetOpen(ctx context.Context, employeeID string, date time.Time) (*attendance.SignIn, error) {
	for _, s := range f.records {
		if s.EmployeeID == employeeID && s.Date.Equal(date) && s.SignOutTime == nil {
			open := s
			return &open, nil
		}
	}
	return nil, nil
}

func (f *fakeSignInRepo) OpenEmployeeIDs(ctx context.Context, employeeIDs []string, date time.Time) ([]string, error) {
	var open []string
	for _, id := range employeeIDs {
		record, err := f.GetOpen(ctx, id, date)
		if err != nil {
			return nil, err
		}
		if record != nil {
			open = append(open, id)
		}
	}
	return open, nil
}

func (f *fakeSignInRepo) SetSignOut(ctx context.Context, id string, signOutTime time.Time, signedOutBy string) error {
	s, ok := f.records[id]
	if !ok {
		return attendance.ErrSignInNotFound
	}
	if s.SignOutTime != nil {
		return attendance.ErrAlreadySignedOut
	}
	s.SignOutTime = &signOutTime
	s.SignedOutBy = &signedOutBy
	f.records[id] = s
	return nil
}

func (f *fakeSignInRepo) List(ctx context.Context, filter attendance.ListSignInsFilter) ([]attendance.SignIn, int64, error) {
	var out []attendance.SignIn
	for _, s := range f.records {
		if filter.ActiveOnly && s.SignOutTime != nil {
			continue
		}
		if filter.Date != nil && !s.Date.Equal(*filter.Date) {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSignInRepo) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.SignIn, error) {
	var out []attendance.SignIn
	for _, s := range f.records {
		if s.EmployeeID == employeeID && !s.Date.Before(start) && !s.Date.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for i, id := range ids {
		f.employees[id] = employee.Employee{
			ID:             id,
			EmployeeNumber: string(rune('0' + i)),
			FirstName:      "Test",
			LastName:       "Worker",
			IsActive:       true,
		}
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByNumber(ctx context.Context, employeeNumber string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeNumber == employeeNumber {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range ids {
		if e, ok := f.employees[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	delete(f.employees, id)
	return nil
}

func TestSignIn(t *testing.T) {
	ctx := actorContext(t)
	signInRepo := newFakeSignInRepo()
	svc := NewSignInService(signInRepo, newFakeEmployeeRepo(testEmployeeA))

	resp, err := svc.SignIn(ctx, attendance.SignInRequest{
		EmployeeID: testEmployeeA,
		Date:       "2024-03-11",
		Time:       "07:30",
	})
	require.NoError(t, err)
	assert.Equal(t, testEmployeeA, resp.EmployeeID)
	assert.True(t, resp.Active)
}

func TestSignInAlreadyOpen(t *testing.T) {
	ctx := actorContext(t)
	signInRepo := newFakeSignInRepo()
	svc := NewSignInService(signInRepo, newFakeEmployeeRepo(testEmployeeA))

	req := attendance.SignInRequest{
		EmployeeID: testEmployeeA,
		Date:       "2024-03-11",
		Time:       "07:30",
	}
	_, err := svc.SignIn(ctx, req)
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadySignedIn)
}

func TestSignInUnknownEmployee(t *testing.T) {
	ctx := actorContext(t)
	svc := NewSignInService(newFakeSignInRepo(), newFakeEmployeeRepo())

	_, err := svc.SignIn(ctx, attendance.SignInRequest{
		EmployeeID: testEmployeeA,
		Date:       "2024-03-11",
		Time:       "07:30",
	})
	assert.ErrorIs(t, err, attendance.ErrEmployeeNotFound)
}

func TestBulkSignInPartitions(t *testing.T) {
	ctx := actorContext(t)
	signInRepo := newFakeSignInRepo()
	svc := NewSignInService(signInRepo, newFakeEmployeeRepo(testEmployeeA, testEmployeeB))

	_, err := svc.SignIn(ctx, attendance.SignInRequest{
		EmployeeID: testEmployeeA,
		Date:       "2024-03-11",
		Time:       "07:00",
	})
	require.NoError(t, err)

	resp, err := svc.BulkSignIn(ctx, attendance.BulkSignInRequest{
		EmployeeIDs: []string{testEmployeeA, testEmployeeB},
		Date:        "2024-03-11",
		Time:        "07:30",
	})
	require.NoError(t, err)
	assert.Len(t, resp.SignedIn, 1)
	assert.Equal(t, []string{testEmployeeA}, resp.AlreadySignedIn)
}

func TestBulkSignInAllOpen(t *testing.T) {
	ctx := actorContext(t)
	signInRepo := newFakeSignInRepo()
	svc := NewSignInService(signInRepo, newFakeEmployeeRepo(testEmployeeA))

	_, err := svc.SignIn(ctx, attendance.SignInRequest{
		EmployeeID: testEmployeeA,
		Date:       "2024-03-11",
		Time:       "07:00",
	})
	require.NoError(t, err)

	_, err = svc.BulkSignIn(ctx, attendance.BulkSignInRequest{
		EmployeeIDs: []string{testEmployeeA},
		Date:        "2024-03-11",
		Time:        "07:30",
	})
	assert.ErrorIs(t, err, attendance.ErrNoneToSignIn)
}

func TestSignOut(t *testing.T) {
	ctx := actorContext(t)
	signInRepo := newFakeSignInRepo()
	svc := NewSignInService(signInRepo, newFakeEmployeeRepo(testEmployeeA))

	created, err := svc.SignIn(ctx, attendance.SignInRequest{
		EmployeeID: testEmployeeA,
		Date:       "2024-03-11",
		Time:       "07:30",
	})
	require.NoError(t, err)

	resp, err := svc.SignOut(ctx, attendance.SignOutRequest{
		SignInID: created.ID,
		Time:     "16:00",
	})
	require.NoError(t, err)
	assert.False(t, resp.Active)
	require.NotNil(t, resp.SignOutTime)

	// A second sign-out must fail.
	_, err = svc.SignOut(ctx, attendance.SignOutRequest{
		SignInID: created.ID,
		Time:     "17:00",
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadySignedOut)
}

func TestSignOutBeforeSignIn(t *testing.T) {
	ctx := actorContext(t)
	signInRepo := newFakeSignInRepo()
	svc := NewSignInService(signInRepo, newFakeEmployeeRepo(testEmployeeA))

	created, err := svc.SignIn(ctx, attendance.SignInRequest{
		EmployeeID: testEmployeeA,
		Date:       "2024-03-11",
		Time:       "07:30",
	})
	require.NoError(t, err)

	_, err = svc.SignOut(ctx, attendance.SignOutRequest{
		SignInID: created.ID,
		Time:     "06:00",
	})
	assert.ErrorIs(t, err, attendance.ErrSignOutBeforeIn)
}

func TestListActive(t *testing.T) {
	ctx := actorContext(t)
	signInRepo := newFakeSignInRepo()
	svc := NewSignInService(signInRepo, newFakeEmployeeRepo(testEmployeeA, testEmployeeB))

	first, err := svc.SignIn(ctx, attendance.SignInRequest{
		EmployeeID: testEmployeeA,
		Date:       "2024-03-11",
		Time:       "07:00",
	})
	require.NoError(t, err)
	_, err = svc.SignIn(ctx, attendance.SignInRequest{
		EmployeeID: testEmployeeB,
		Date:       "2024-03-11",
		Time:       "07:15",
	})
	require.NoError(t, err)

	_, err = svc.SignOut(ctx, attendance.SignOutRequest{SignInID: first.ID, Time: "12:00"})
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, testEmployeeB, active[0].EmployeeID)
}
