package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/hrms-backend-go/internal/domain/activity"
	"github.com/workpulse/hrms-backend-go/internal/domain/attendance"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type fakeAttendanceRepo struct {
	records   map[string]*attendance.Attendance
	createErr error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func dayKey(employeeID string, t time.Time) string {
	return employeeID + "/" + t.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att *attendance.Attendance) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := dayKey(att.EmployeeID, att.Date)
	if _, ok := f.records[key]; ok {
		return attendance.ErrAlreadyCheckedIn
	}
	clone := *att
	f.records[key] = &clone
	return nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att *attendance.Attendance) error {
	key := dayKey(att.EmployeeID, att.Date)
	if _, ok := f.records[key]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	clone := *att
	f.records[key] = &clone
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	for key, att := range f.records {
		if att.ID == id {
			delete(f.records, key)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (*attendance.Attendance, error) {
	for _, att := range f.records {
		if att.ID == id {
			clone := *att
			return &clone, nil
		}
	}
	return nil, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDay(_ context.Context, employeeID string, day dateutil.Day) (*attendance.Attendance, error) {
	att, ok := f.records[employeeID+"/"+day.String()]
	if !ok {
		return nil, attendance.ErrAttendanceNotFound
	}
	clone := *att
	return &clone, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, _ attendance.MyAttendanceFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID {
			out = append(out, *att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, *att)
	}
	return out, nil
}

type fakeRecorder struct {
	entries []activity.Entry
}

func (f *fakeRecorder) Record(_ context.Context, entry activity.Entry) {
	f.entries = append(f.entries, entry)
}

func newTestService(repo *fakeAttendanceRepo, rec *fakeRecorder, now time.Time) *attendanceService {
	svc := NewAttendanceService(repo, rec, time.UTC).(*attendanceService)
	svc.now = func() time.Time { return now }
	return svc
}

var employeeActor = user.Actor{ID: "user-1", EmployeeID: "emp-1", Role: user.RoleEmployee}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	t.Run("first check-in of the day succeeds", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		rec := &fakeRecorder{}
		svc := newTestService(repo, rec, now)

		att, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		require.NoError(t, err)
		assert.Equal(t, "emp-1", att.EmployeeID)
		assert.Equal(t, attendance.StatusPresent, att.Status)
		assert.Equal(t, "2024-03-15", att.Date.Format("2006-01-02"))
		require.NotNil(t, att.CheckInTime)
		assert.True(t, att.CheckInTime.Equal(now))
		assert.Nil(t, att.CheckOutTime)
		assert.Nil(t, att.DurationSeconds)
		assert.Equal(t, "emp-1", att.CreatedBy)
		assert.Equal(t, "emp-1", att.UpdatedBy)

		require.Len(t, rec.entries, 1)
		assert.Equal(t, activity.ActionAttendanceCheckIn, rec.entries[0].Action)
		assert.Equal(t, "user-1", rec.entries[0].ActorID)
	})

	t.Run("second check-in same day is rejected with the existing time", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, &fakeRecorder{}, now)

		_, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		require.NoError(t, err)

		_, err = svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
		assert.ErrorContains(t, err, "existing check-in at 2024-03-15T09:00:00Z")
	})

	t.Run("a row without a check-in is claimed in place", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		placeholder := &attendance.Attendance{
			ID:         "att-absent",
			EmployeeID: "emp-1",
			Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusAbsent,
			CreatedBy:  "emp-hr",
		}
		repo.records[dayKey("emp-1", placeholder.Date)] = placeholder
		svc := newTestService(repo, &fakeRecorder{}, now)

		att, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		require.NoError(t, err)
		assert.Equal(t, "att-absent", att.ID)
		assert.Equal(t, attendance.StatusPresent, att.Status)
		require.NotNil(t, att.CheckInTime)
		assert.True(t, att.CheckInTime.Equal(now))
		assert.Equal(t, "emp-hr", att.CreatedBy)
		assert.Equal(t, "emp-1", att.UpdatedBy)

		stored, err := repo.GetByID(ctx, "att-absent")
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusPresent, stored.Status)
	})

	t.Run("explicit date and bare timestamp hit the same day key", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, &fakeRecorder{}, now)

		_, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{Date: "2024-03-15"})
		require.NoError(t, err)

		_, err = svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{Date: "2024-03-15T23:59:59Z"})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})

	t.Run("malformed date is rejected before any write", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, &fakeRecorder{}, now)

		_, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{Date: "15-03-2024"})
		assert.ErrorIs(t, err, dateutil.ErrInvalidDate)
		assert.Empty(t, repo.records)
	})

	t.Run("unique constraint race surfaces as already checked in", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		repo.createErr = attendance.ErrAlreadyCheckedIn
		svc := newTestService(repo, &fakeRecorder{}, now)

		_, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	t.Run("check-out records floored whole seconds", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		rec := &fakeRecorder{}
		svc := newTestService(repo, rec, checkIn)

		_, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		require.NoError(t, err)

		svc.now = func() time.Time { return checkIn.Add(8*time.Hour + 30*time.Minute + 900*time.Millisecond) }
		att, err := svc.CheckOut(ctx, employeeActor, attendance.CheckOutRequest{})
		require.NoError(t, err)
		require.NotNil(t, att.DurationSeconds)
		assert.Equal(t, int64(8*3600+30*60), *att.DurationSeconds)
		assert.InDelta(t, 8.5, att.WorkHours(), 0.001)
		assert.Equal(t, "emp-1", att.UpdatedBy)

		require.Len(t, rec.entries, 2)
		assert.Equal(t, activity.ActionAttendanceCheckOut, rec.entries[1].Action)
	})

	t.Run("check-out without check-in is rejected", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), &fakeRecorder{}, checkIn)

		_, err := svc.CheckOut(ctx, employeeActor, attendance.CheckOutRequest{})
		assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
	})

	t.Run("second check-out is rejected and keeps the first duration", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, &fakeRecorder{}, checkIn)

		_, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		require.NoError(t, err)

		svc.now = func() time.Time { return checkIn.Add(8 * time.Hour) }
		first, err := svc.CheckOut(ctx, employeeActor, attendance.CheckOutRequest{})
		require.NoError(t, err)

		svc.now = func() time.Time { return checkIn.Add(10 * time.Hour) }
		_, err = svc.CheckOut(ctx, employeeActor, attendance.CheckOutRequest{})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)

		stored, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, *first.DurationSeconds, *stored.DurationSeconds)
	})

	t.Run("clock moving backwards clamps duration to zero", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, &fakeRecorder{}, checkIn)

		_, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		require.NoError(t, err)

		svc.now = func() time.Time { return checkIn.Add(-5 * time.Minute) }
		att, err := svc.CheckOut(ctx, employeeActor, attendance.CheckOutRequest{Date: "2024-03-15"})
		require.NoError(t, err)
		require.NotNil(t, att.DurationSeconds)
		assert.Equal(t, int64(0), *att.DurationSeconds)
	})
}

func TestAttendanceAccess(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	admin := user.Actor{ID: "user-admin", EmployeeID: "emp-admin", Role: user.RoleAdmin}
	hr := user.Actor{ID: "user-hr", EmployeeID: "emp-hr", Role: user.RoleHR}

	t.Run("employee cannot list all attendance", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), &fakeRecorder{}, now)

		_, err := svc.GetAllAttendance(ctx, employeeActor, attendance.AttendanceFilter{})
		assert.ErrorIs(t, err, user.ErrForbidden)
	})

	t.Run("hr can list but cannot delete", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, &fakeRecorder{}, now)

		_, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		require.NoError(t, err)

		records, err := svc.GetAllAttendance(ctx, hr, attendance.AttendanceFilter{})
		require.NoError(t, err)
		assert.Len(t, records, 1)

		err = svc.DeleteAttendance(ctx, hr, records[0].ID)
		assert.ErrorIs(t, err, user.ErrForbidden)
	})

	t.Run("admin delete removes the row and logs the original date", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		rec := &fakeRecorder{}
		svc := newTestService(repo, rec, now)

		att, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		require.NoError(t, err)

		err = svc.DeleteAttendance(ctx, admin, att.ID)
		require.NoError(t, err)
		assert.Empty(t, repo.records)

		last := rec.entries[len(rec.entries)-1]
		assert.Equal(t, activity.ActionAttendanceDeleted, last.Action)
		assert.Equal(t, "2024-03-15", last.Details["original_date"])
	})

	t.Run("deleting a missing record reports not found", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), &fakeRecorder{}, now)

		err := svc.DeleteAttendance(ctx, admin, "nope")
		assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	})
}

func TestGetMyAttendance(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	t.Run("returns only own records", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, &fakeRecorder{}, now)

		other := user.Actor{ID: "user-2", EmployeeID: "emp-2", Role: user.RoleEmployee}
		_, err := svc.CheckIn(ctx, employeeActor, attendance.CheckInRequest{})
		require.NoError(t, err)
		_, err = svc.CheckIn(ctx, other, attendance.CheckInRequest{})
		require.NoError(t, err)

		records, err := svc.GetMyAttendance(ctx, employeeActor, attendance.MyAttendanceFilter{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "emp-1", records[0].EmployeeID)
	})

	t.Run("bad filter date is rejected", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), &fakeRecorder{}, now)

		_, err := svc.GetMyAttendance(ctx, employeeActor, attendance.MyAttendanceFilter{StartDate: "March 1"})
		assert.Error(t, err)
	})
}

func TestCheckInRepoFailure(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.createErr = errors.New("connection refused")
	svc := newTestService(repo, &fakeRecorder{}, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), employeeActor, attendance.CheckInRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}
