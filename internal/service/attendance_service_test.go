package service

import (
	"testing"
	"time"

	"go-retail-admin/internal/seed"
	"go-retail-admin/internal/store"
	"go-retail-admin/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceFixture(t *testing.T) (AttendanceService, *store.Stores) {
	t.Helper()
	stores := store.NewStores()
	for _, member := range seed.Staff() {
		require.NoError(t, stores.Staff.Insert(member))
	}
	hub := ws.NewHub()
	go hub.Run()
	return NewAttendanceService(stores.Attendance, stores.Staff, hub), stores
}

func TestRecordSnapshotsStaff(t *testing.T) {
	svc, stores := newAttendanceFixture(t)
	day := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)

	sheet, err := svc.Record(day, []int{1, 3, 999}, "admin1@example.com")
	require.NoError(t, err)

	assert.Equal(t, 1, sheet.ID)
	assert.Equal(t, "admin1@example.com", sheet.CreatedBy)
	require.Len(t, sheet.Staff, 2, "unknown staff ids are dropped")
	assert.Equal(t, "John Doe", sheet.Staff[0].Name)

	// Deleting a staff member later leaves the sheet as taken
	require.NoError(t, stores.Staff.Delete(1))
	got, err := svc.Get(sheet.ID)
	require.NoError(t, err)
	assert.Len(t, got.Staff, 2)
}

func TestAmendKeepsCreationStamps(t *testing.T) {
	svc, _ := newAttendanceFixture(t)
	day := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)

	sheet, err := svc.Record(day, []int{1}, "admin1@example.com")
	require.NoError(t, err)

	amended, err := svc.Amend(sheet.ID, day.AddDate(0, 0, 1), []int{2})
	require.NoError(t, err)

	assert.Equal(t, sheet.CreatedBy, amended.CreatedBy)
	assert.Equal(t, sheet.CreatedAt, amended.CreatedAt)
	require.Len(t, amended.Staff, 1)
	assert.Equal(t, "Jane Smith", amended.Staff[0].Name)

	_, err = svc.Amend(999, day, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
