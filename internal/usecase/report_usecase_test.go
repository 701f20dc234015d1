package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/state"
)

func seedReportMirror() *state.Mirror {
	now := today()
	yesterday := time.Now().AddDate(0, 0, -1).Format(entity.DateLayout)

	m := state.NewMirror()
	m.Replace(&entity.Dataset{
		Patients: []entity.Patient{
			{PatientID: 1, Name: "Sara Ali"},
			{PatientID: 2, Name: "Omar Hassan"},
		},
		Clinics: []entity.Clinic{
			{ClinicID: 1, ClinicName: "Dermatology", PriceFirstVisit: money(100), PriceFollowup: money(50)},
			{ClinicID: 2, ClinicName: "Dental", PriceFirstVisit: money(200), PriceFollowup: money(80)},
		},
		Visits: []entity.Visit{
			{VisitID: 1, PatientID: 1, ClinicID: 2, VisitDate: now, QueueNumber: 2, Status: entity.VisitStatusWaiting, VisitType: entity.VisitTypeFirstVisit},
			{VisitID: 2, PatientID: 2, ClinicID: 2, VisitDate: now, QueueNumber: 1, Status: entity.VisitStatusCompleted, VisitType: entity.VisitTypeFollowUp},
			{VisitID: 3, PatientID: 1, ClinicID: 1, VisitDate: now, QueueNumber: 1, Status: entity.VisitStatusWaiting, VisitType: entity.VisitTypeFirstVisit},
			{VisitID: 4, PatientID: 2, ClinicID: 2, VisitDate: yesterday, QueueNumber: 1, Status: entity.VisitStatusCompleted, VisitType: entity.VisitTypeFirstVisit},
		},
		Revenues: []entity.Revenue{
			{RevenueID: 1, VisitID: 1, ClinicID: 2, Amount: money(200), Date: now, Type: entity.VisitTypeFirstVisit},
			{RevenueID: 2, VisitID: 2, ClinicID: 2, Amount: money(80), Date: now, Type: entity.VisitTypeFollowUp},
			{RevenueID: 3, VisitID: 3, ClinicID: 1, Amount: money(100), Date: now, Type: entity.VisitTypeFirstVisit},
			{RevenueID: 4, VisitID: 4, ClinicID: 2, Amount: money(200), Date: yesterday, Type: entity.VisitTypeFirstVisit},
		},
	})
	return m
}

func TestDoctorQueue_ScopedAndSortedByQueueNumber(t *testing.T) {
	u := NewReportUsecase(seedReportMirror(), testLogger())
	doctor := &entity.User{UserID: 5, Username: "dr.huda", Role: entity.RoleDoctor, Clinic: 2}

	queue, err := u.DoctorQueue(context.Background(), doctor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if queue.Total != 2 {
		t.Fatalf("expected 2 visits today for clinic 2, got %d", queue.Total)
	}
	if queue.Visits[0].QueueNumber != 1 || queue.Visits[1].QueueNumber != 2 {
		t.Error("queue must be sorted ascending by queue number")
	}
	if queue.Visits[0].PatientName != "Omar Hassan" {
		t.Errorf("expected resolved patient name, got %q", queue.Visits[0].PatientName)
	}
}

func TestDoctorQueue_RequiresAssignedClinic(t *testing.T) {
	u := NewReportUsecase(seedReportMirror(), testLogger())
	doctor := &entity.User{UserID: 5, Role: entity.RoleDoctor}

	if _, err := u.DoctorQueue(context.Background(), doctor); !errors.Is(err, ErrNoAssignedClinic) {
		t.Fatalf("expected ErrNoAssignedClinic, got %v", err)
	}
}

func TestDoctorDashboard_OwnClinicOnly(t *testing.T) {
	u := NewReportUsecase(seedReportMirror(), testLogger())
	doctor := &entity.User{UserID: 5, Username: "dr.huda", Role: entity.RoleDoctor, Clinic: 2}

	dashboard, err := u.DoctorDashboard(context.Background(), doctor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dashboard.PatientsToday != 2 {
		t.Errorf("expected 2 patients today, got %d", dashboard.PatientsToday)
	}
	if dashboard.CompletedToday != 1 {
		t.Errorf("expected 1 completed visit, got %d", dashboard.CompletedToday)
	}
	// Clinic 2 today: 200 + 80. Yesterday's 200 and clinic 1's 100 excluded.
	if !dashboard.RevenueToday.Equal(money(280)) {
		t.Errorf("expected revenue 280, got %s", dashboard.RevenueToday)
	}
}

func TestManagerDashboard_Aggregates(t *testing.T) {
	u := NewReportUsecase(seedReportMirror(), testLogger())

	dashboard, err := u.ManagerDashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dashboard.TotalRevenue.Equal(money(580)) {
		t.Errorf("expected total revenue 580, got %s", dashboard.TotalRevenue)
	}
	if dashboard.TotalPatients != 2 || dashboard.TotalClinics != 2 {
		t.Errorf("unexpected totals: %+v", dashboard)
	}
	if dashboard.VisitsToday != 3 {
		t.Errorf("expected 3 visits today, got %d", dashboard.VisitsToday)
	}

	if len(dashboard.VisitsByDay) != trailingDays {
		t.Fatalf("expected %d chart days, got %d", trailingDays, len(dashboard.VisitsByDay))
	}
	lastDay := dashboard.VisitsByDay[trailingDays-1]
	if lastDay.Date != today() || lastDay.Visits != 3 {
		t.Errorf("expected today's bucket with 3 visits, got %+v", lastDay)
	}
	prevDay := dashboard.VisitsByDay[trailingDays-2]
	if prevDay.Visits != 1 {
		t.Errorf("expected 1 visit yesterday, got %d", prevDay.Visits)
	}

	for _, c := range dashboard.ByClinic {
		switch c.ClinicID {
		case 1:
			if !c.Amount.Equal(money(100)) {
				t.Errorf("clinic 1: expected 100, got %s", c.Amount)
			}
		case 2:
			if !c.Amount.Equal(money(480)) {
				t.Errorf("clinic 2: expected 480, got %s", c.Amount)
			}
		}
	}
}

func TestReceptionDashboard_Counts(t *testing.T) {
	u := NewReportUsecase(seedReportMirror(), testLogger())

	dashboard, err := u.ReceptionDashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dashboard.TotalPatients != 2 {
		t.Errorf("expected 2 patients, got %d", dashboard.TotalPatients)
	}
	if dashboard.VisitsToday != 3 {
		t.Errorf("expected 3 visits today, got %d", dashboard.VisitsToday)
	}
	if dashboard.WaitingToday != 2 {
		t.Errorf("expected 2 waiting, got %d", dashboard.WaitingToday)
	}
}

func TestRevenueReport_TotalsAndDailyWindow(t *testing.T) {
	u := NewReportUsecase(seedReportMirror(), testLogger())

	report, err := u.RevenueReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Total.Equal(money(580)) {
		t.Errorf("expected total 580, got %s", report.Total)
	}
	if len(report.Entries) != 4 {
		t.Errorf("expected 4 entries, got %d", len(report.Entries))
	}
	if report.Entries[0].ClinicName != "Dental" {
		t.Errorf("expected resolved clinic name, got %q", report.Entries[0].ClinicName)
	}

	if len(report.ByDay) != trailingDays {
		t.Fatalf("expected %d chart days, got %d", trailingDays, len(report.ByDay))
	}
	if !report.ByDay[trailingDays-1].Amount.Equal(money(380)) {
		t.Errorf("expected 380 today, got %s", report.ByDay[trailingDays-1].Amount)
	}
	if !report.ByDay[trailingDays-2].Amount.Equal(money(200)) {
		t.Errorf("expected 200 yesterday, got %s", report.ByDay[trailingDays-2].Amount)
	}
}
