// Package seed provides deterministic demo data for trying out the
// planner without a real roster. IDs are stable so repeated seeding
// is idempotent.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/lkaestner/tourplan/internal/store"
	"github.com/lkaestner/tourplan/internal/tour"
)

// Employees returns the demo care staff.
func Employees(now time.Time) []tour.Employee {
	weekday := []tour.TimeSlot{{Start: "06:00", End: "14:00"}}
	lateShift := []tour.TimeSlot{{Start: "14:00", End: "22:00"}}

	return []tour.Employee{
		{
			ID:   "emp-anna-schmidt",
			Name: "Anna Schmidt",
			Qualifications: []tour.Qualification{
				tour.QualGrundpflege, tour.QualMedikamente, tour.QualWundversorgung,
				tour.QualBehandlungspflege, tour.QualInsulinverabreichung,
			},
			MaxHoursPerDay: 8,
			Contact:        tour.ContactInfo{Phone: "+49 151 12345678", Email: "anna.schmidt@pflege.de"},
			Availability: tour.Schedule{
				Monday: weekday, Tuesday: weekday, Wednesday: weekday,
				Thursday: weekday, Friday: weekday,
			},
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:   "emp-michael-weber",
			Name: "Michael Weber",
			Qualifications: []tour.Qualification{
				tour.QualGrundpflege, tour.QualMedikamente, tour.QualBehandlungspflege,
			},
			MaxHoursPerDay: 10,
			Contact:        tour.ContactInfo{Phone: "+49 152 98765432", Email: "michael.weber@pflege.de"},
			Availability: tour.Schedule{
				Monday: lateShift, Tuesday: lateShift, Wednesday: lateShift,
				Thursday: lateShift, Friday: lateShift, Saturday: lateShift,
			},
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:   "emp-sarah-mueller",
			Name: "Sarah Müller",
			Qualifications: []tour.Qualification{
				tour.QualGrundpflege, tour.QualMedikamente, tour.QualDemenzbetreuung,
			},
			MaxHoursPerDay: 8,
			Contact:        tour.ContactInfo{Phone: "+49 160 11122233", Email: "sarah.mueller@pflege.de"},
			Availability: tour.Schedule{
				Monday: weekday, Tuesday: weekday, Wednesday: weekday, Friday: weekday,
			},
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:             "emp-peter-wagner",
			Name:           "Peter Wagner",
			Qualifications: []tour.Qualification{tour.QualGrundpflege},
			MaxHoursPerDay: 6,
			Contact:        tour.ContactInfo{Phone: "+49 171 22211100", Email: "peter.wagner@pflege.de"},
			Availability: tour.Schedule{
				Monday: weekday, Wednesday: weekday, Friday: weekday,
			},
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// Residents returns the demo care recipients.
func Residents(now time.Time) []tour.Resident {
	return []tour.Resident{
		{
			ID:          "res-helga-schneider",
			Name:        "Helga Schneider",
			DateOfBirth: "1938-05-12",
			Address:     tour.Address{Street: "Müllerstr.", HouseNumber: "12", ZipCode: "13353", City: "Berlin"},
			CareLevel:   3,
			Requirements: []tour.CareRequirement{
				{Type: tour.TypeKoerperpflege, Frequency: "daily", PreferredTime: "07:00", Duration: 45, RequiredQualification: tour.QualGrundpflege},
				{Type: tour.TypeMedikamente, Frequency: "daily", PreferredTime: "08:00", Duration: 15, RequiredQualification: tour.QualMedikamente},
			},
			MedicalInfo: tour.MedicalRecord{
				Diagnoses:     []string{"Hypertonie", "Diabetes mellitus Typ 2"},
				MobilityLevel: 2,
			},
			Contact:   tour.ContactInfo{Phone: "+49 30 12345678"},
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "res-karl-hoffmann",
			Name:        "Karl Hoffmann",
			DateOfBirth: "1935-08-23",
			Address:     tour.Address{Street: "Seestr.", HouseNumber: "45", ZipCode: "13347", City: "Berlin"},
			CareLevel:   4,
			Requirements: []tour.CareRequirement{
				{Type: tour.TypeKoerperpflege, Frequency: "daily", PreferredTime: "08:00", Duration: 60, RequiredQualification: tour.QualGrundpflege},
				{Type: tour.TypeMedikamente, Frequency: "daily", PreferredTime: "09:00", Duration: 20, RequiredQualification: tour.QualBehandlungspflege, Notes: "Insulingabe"},
			},
			MedicalInfo: tour.MedicalRecord{
				Allergies:     []string{"Penicillin"},
				Diagnoses:     []string{"Diabetes mellitus Typ 1", "Z.n. Apoplex"},
				MobilityLevel: 4,
			},
			Contact:   tour.ContactInfo{Phone: "+49 30 98765432"},
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "res-margarete-fischer",
			Name:        "Margarete Fischer",
			DateOfBirth: "1942-03-15",
			Address:     tour.Address{Street: "Amrumer Str.", HouseNumber: "8", ZipCode: "13353", City: "Berlin"},
			CareLevel:   2,
			Requirements: []tour.CareRequirement{
				{Type: tour.TypeKoerperpflege, Frequency: "daily", PreferredTime: "09:00", Duration: 30, RequiredQualification: tour.QualGrundpflege},
				{Type: tour.TypeFreizeitgestaltung, Frequency: "weekly", Duration: 45, RequiredQualification: tour.QualGrundpflege},
			},
			MedicalInfo: tour.MedicalRecord{
				Diagnoses:     []string{"Diabetes mellitus Typ 2", "Arthrose"},
				MobilityLevel: 2,
			},
			Contact:   tour.ContactInfo{Phone: "+49 30 22334455"},
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "res-wilhelm-bauer",
			Name:        "Wilhelm Bauer",
			DateOfBirth: "1940-11-08",
			Address:     tour.Address{Street: "Togostr.", HouseNumber: "78", ZipCode: "13351", City: "Berlin"},
			CareLevel:   5,
			Requirements: []tour.CareRequirement{
				{Type: tour.TypeKoerperpflege, Frequency: "daily", PreferredTime: "07:30", Duration: 70, RequiredQualification: tour.QualGrundpflege},
				{Type: tour.TypeWundversorgung, Frequency: "daily", PreferredTime: "08:45", Duration: 30, RequiredQualification: tour.QualWundversorgung, Notes: "Dekubitus Grad 3"},
				{Type: tour.TypeMobilisation, Frequency: "daily", PreferredTime: "09:30", Duration: 25, RequiredQualification: tour.QualGrundpflege},
			},
			MedicalInfo: tour.MedicalRecord{
				Diagnoses:     []string{"Palliativsituation", "Dekubitus", "Herzinsuffizienz"},
				MobilityLevel: 5,
			},
			Contact:   tour.ContactInfo{Phone: "+49 30 33445566"},
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "res-gertrud-meyer",
			Name:        "Gertrud Meyer",
			DateOfBirth: "1945-07-22",
			Address:     tour.Address{Street: "Bristolstr.", HouseNumber: "12", ZipCode: "13349", City: "Berlin"},
			CareLevel:   3,
			Requirements: []tour.CareRequirement{
				{Type: tour.TypeKoerperpflege, Frequency: "daily", PreferredTime: "10:00", Duration: 40, RequiredQualification: tour.QualGrundpflege},
				{Type: tour.TypeMedikamente, Frequency: "daily", PreferredTime: "10:45", Duration: 10, RequiredQualification: tour.QualMedikamente},
			},
			MedicalInfo: tour.MedicalRecord{
				Diagnoses:     []string{"Alzheimer-Demenz", "Hypertonie"},
				MobilityLevel: 2,
			},
			Contact:   tour.ContactInfo{Phone: "+49 30 44556677"},
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "res-anna-hoffmann",
			Name:        "Anna Hoffmann",
			DateOfBirth: "1946-02-28",
			Address:     tour.Address{Street: "Utrechter Str.", HouseNumber: "56", ZipCode: "13347", City: "Berlin"},
			CareLevel:   1,
			Requirements: []tour.CareRequirement{
				{Type: tour.TypeKoerperpflege, Frequency: "daily", PreferredTime: "11:00", Duration: 25, RequiredQualification: tour.QualGrundpflege, Notes: "Nur Unterstützung Duschen"},
			},
			MedicalInfo: tour.MedicalRecord{
				Diagnoses:     []string{"Leichte Herzinsuffizienz"},
				MobilityLevel: 1,
			},
			Contact:   tour.ContactInfo{Phone: "+49 30 33445566"},
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// Tours returns two demo tours for the given day: an early tour with
// driving segments and a late tour, both built from the demo roster.
func Tours(date string, now time.Time) []tour.Tour {
	at := func(clock string) time.Time {
		t, _ := time.Parse("2006-01-02 15:04", date+" "+clock)
		return t
	}
	task := func(id, tourID, residentID string, typ tour.TaskType, clock string, duration int, qual tour.Qualification, notes string) tour.Task {
		return tour.Task{
			ID:                    id,
			TourID:                tourID,
			ResidentID:            residentID,
			Type:                  typ,
			ScheduledTime:         at(clock),
			EstimatedDuration:     duration,
			RequiredQualification: qual,
			Status:                tour.TaskPending,
			Notes:                 notes,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
	}

	early := tour.Tour{
		ID:           "tour-demo-early",
		EmployeeID:   "emp-anna-schmidt",
		Date:         date,
		Shift:        tour.ShiftEarly,
		Status:       tour.TourPlanned,
		PlannedStart: "06:00",
		PlannedEnd:   "14:00",
		Tasks: []tour.Task{
			task("task-demo-01", "tour-demo-early", "res-helga-schneider", tour.TypeKoerperpflege, "07:00", 45, tour.QualGrundpflege, ""),
			task("task-demo-02", "tour-demo-early", tour.DrivingResidentID, tour.TypeDokumentation, "07:45", 10, tour.QualGrundpflege, "Fahrtzeit"),
			task("task-demo-03", "tour-demo-early", "res-karl-hoffmann", tour.TypeKoerperpflege, "08:00", 60, tour.QualGrundpflege, ""),
			task("task-demo-04", "tour-demo-early", "res-karl-hoffmann", tour.TypeMedikamente, "09:00", 20, tour.QualBehandlungspflege, "Insulingabe"),
			task("task-demo-05", "tour-demo-early", tour.DrivingResidentID, tour.TypeDokumentation, "09:20", 15, tour.QualGrundpflege, "Fahrtzeit"),
			task("task-demo-06", "tour-demo-early", "res-wilhelm-bauer", tour.TypeWundversorgung, "09:35", 30, tour.QualWundversorgung, "Dekubitus Grad 3"),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	late := tour.Tour{
		ID:           "tour-demo-late",
		EmployeeID:   "emp-michael-weber",
		Date:         date,
		Shift:        tour.ShiftLate,
		Status:       tour.TourPlanned,
		PlannedStart: "14:00",
		PlannedEnd:   "22:00",
		Tasks: []tour.Task{
			task("task-demo-07", "tour-demo-late", "res-gertrud-meyer", tour.TypeMedikamente, "18:00", 10, tour.QualMedikamente, ""),
			task("task-demo-08", "tour-demo-late", tour.DrivingResidentID, tour.TypeDokumentation, "18:10", 10, tour.QualGrundpflege, "Fahrtzeit"),
			task("task-demo-09", "tour-demo-late", "res-helga-schneider", tour.TypeErnaehrung, "18:20", 30, tour.QualGrundpflege, "Abendessen anreichen"),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	return []tour.Tour{early, late}
}

// Apply writes the demo data to the store. Existing collections are
// only overwritten when force is set.
func Apply(ctx context.Context, st store.Store, date string, now time.Time, force bool) error {
	if !force {
		existing, err := store.LoadEmployees(ctx, st)
		if err != nil {
			return fmt.Errorf("checking existing data: %w", err)
		}
		if len(existing) > 0 {
			return fmt.Errorf("store already contains %d employees, use force to overwrite", len(existing))
		}
	}

	if err := store.SaveEmployees(ctx, st, Employees(now)); err != nil {
		return fmt.Errorf("seeding employees: %w", err)
	}
	if err := store.SaveResidents(ctx, st, Residents(now)); err != nil {
		return fmt.Errorf("seeding residents: %w", err)
	}
	if err := store.SaveTours(ctx, st, Tours(date, now)); err != nil {
		return fmt.Errorf("seeding tours: %w", err)
	}
	return nil
}
