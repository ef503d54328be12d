package service

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/seed"
	"github.com/alnajat-edu/portal-api/internal/store"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
)

// ScheduleService reads the fixed weekly schedule.
type ScheduleService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewScheduleService constructs the schedule service.
func NewScheduleService(st *store.Store, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{store: st, logger: logger}
}

// Slot is one period of a day: either a lesson or a free period.
type Slot struct {
	Period models.Period        `json:"period"`
	Lesson *models.ScheduleItem `json:"lesson,omitempty"`
	Free   bool                 `json:"free"`
}

// DaySchedule lists a day's slots in period order.
type DaySchedule struct {
	Day   string `json:"day"`
	Slots []Slot `json:"slots"`
}

// SectionWeek builds the full weekly grid for a section. Every
// (day, period) cell is present; cells without a lesson are free periods.
func (s *ScheduleService) SectionWeek(sectionID string) ([]DaySchedule, error) {
	if _, ok := s.store.SectionByID(sectionID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("section %s not found", sectionID))
	}

	type cell struct {
		day      string
		periodID int
	}
	lessons := map[cell]models.ScheduleItem{}
	for _, item := range s.store.Schedule() {
		if item.SectionID == sectionID {
			lessons[cell{item.Day, item.PeriodID}] = item
		}
	}

	periods := s.store.Periods()
	week := make([]DaySchedule, 0, len(seed.Days))
	for _, day := range seed.Days {
		ds := DaySchedule{Day: day}
		for _, period := range periods {
			slot := Slot{Period: period, Free: true}
			if item, ok := lessons[cell{day, period.ID}]; ok {
				lesson := item
				slot.Lesson = &lesson
				slot.Free = false
			}
			ds.Slots = append(ds.Slots, slot)
		}
		week = append(week, ds)
	}
	return week, nil
}

// TeacherWeek lists a teacher's lessons grouped by day, period-ordered.
func (s *ScheduleService) TeacherWeek(teacherID string) []DaySchedule {
	byDay := map[string][]models.ScheduleItem{}
	for _, item := range s.store.Schedule() {
		if item.TeacherID == teacherID {
			byDay[item.Day] = append(byDay[item.Day], item)
		}
	}

	periods := map[int]models.Period{}
	for _, p := range s.store.Periods() {
		periods[p.ID] = p
	}

	var week []DaySchedule
	for _, day := range seed.Days {
		items := byDay[day]
		if len(items) == 0 {
			continue
		}
		sort.Slice(items, func(i, j int) bool { return items[i].PeriodID < items[j].PeriodID })
		ds := DaySchedule{Day: day}
		for _, item := range items {
			lesson := item
			ds.Slots = append(ds.Slots, Slot{Period: periods[item.PeriodID], Lesson: &lesson})
		}
		week = append(week, ds)
	}
	return week
}

// DayForSection returns one day of a section's schedule.
func (s *ScheduleService) DayForSection(sectionID, day string) ([]Slot, error) {
	week, err := s.SectionWeek(sectionID)
	if err != nil {
		return nil, err
	}
	for _, ds := range week {
		if ds.Day == day {
			return ds.Slots, nil
		}
	}
	return nil, nil
}
