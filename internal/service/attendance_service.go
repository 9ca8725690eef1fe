package service

import (
	"time"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"
	"go-retail-admin/internal/ws"

	"github.com/rs/zerolog/log"
)

// AttendanceService records which staff were present on a day. Sheets hold
// staff snapshots, so editing or deleting a staff member later leaves old
// sheets as they were taken.
type AttendanceService interface {
	Record(date time.Time, staffIDs []int, createdBy string) (model.Attendance, error)
	Amend(id int, date time.Time, staffIDs []int) (model.Attendance, error)
	Delete(id int) error
	Get(id int) (model.Attendance, error)
	List(p store.Projection) []model.Attendance
}

type attendanceService struct {
	attendance *store.SeqTable[model.Attendance]
	staff      *store.SeqTable[model.Staff]
	wsHub      *ws.Hub
}

func NewAttendanceService(attendance *store.SeqTable[model.Attendance], staff *store.SeqTable[model.Staff], hub *ws.Hub) AttendanceService {
	return &attendanceService{attendance: attendance, staff: staff, wsHub: hub}
}

// resolve keeps only ids that exist right now, in staff-table order.
func (s *attendanceService) resolve(staffIDs []int) []model.Staff {
	wanted := make(map[int]bool, len(staffIDs))
	for _, id := range staffIDs {
		wanted[id] = true
	}
	var present []model.Staff
	for _, st := range s.staff.List() {
		if wanted[st.ID] {
			present = append(present, st)
		}
	}
	return present
}

func (s *attendanceService) Record(date time.Time, staffIDs []int, createdBy string) (model.Attendance, error) {
	sheet, err := s.attendance.Add(model.Attendance{
		Date:      date,
		Staff:     s.resolve(staffIDs),
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return model.Attendance{}, err
	}

	log.Info().Int("id", sheet.ID).Int("present", len(sheet.Staff)).Msg("attendance recorded")
	go s.wsHub.Publish("attendance_recorded", sheet)

	return sheet, nil
}

// Amend replaces the date and staff set but keeps the original createdBy and
// createdAt stamps.
func (s *attendanceService) Amend(id int, date time.Time, staffIDs []int) (model.Attendance, error) {
	sheet, err := s.attendance.Get(id)
	if err != nil {
		return model.Attendance{}, err
	}

	sheet.Date = date
	sheet.Staff = s.resolve(staffIDs)
	if err := s.attendance.Update(sheet); err != nil {
		return model.Attendance{}, err
	}
	return sheet, nil
}

func (s *attendanceService) Delete(id int) error {
	return s.attendance.Delete(id)
}

func (s *attendanceService) Get(id int) (model.Attendance, error) {
	return s.attendance.Get(id)
}

func (s *attendanceService) List(p store.Projection) []model.Attendance {
	return store.Apply(s.attendance.List(), p, store.Fields[model.Attendance]{
		Search: []string{"created_by"},
		Text: map[string]func(model.Attendance) string{
			"created_by": func(a model.Attendance) string { return a.CreatedBy },
		},
		Numeric: map[string]func(model.Attendance) float64{
			"date": func(a model.Attendance) float64 { return float64(a.Date.Unix()) },
			"id":   func(a model.Attendance) float64 { return float64(a.ID) },
		},
	})
}
