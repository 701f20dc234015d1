package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/state"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrNoAssignedClinic = errors.New("doctor has no assigned clinic")

// trailingDays is the window of the per-day dashboard charts.
const trailingDays = 7

type ReportUsecase interface {
	DoctorQueue(ctx context.Context, doctor *entity.User) (*dto.VisitListResponse, error)
	DoctorDashboard(ctx context.Context, doctor *entity.User) (*dto.DoctorDashboardResponse, error)
	ManagerDashboard(ctx context.Context) (*dto.ManagerDashboardResponse, error)
	ReceptionDashboard(ctx context.Context) (*dto.ReceptionDashboardResponse, error)
	RevenueReport(ctx context.Context) (*dto.RevenueReportResponse, error)
}

type reportUsecase struct {
	mirror *state.Mirror
	log    *logrus.Logger
}

func NewReportUsecase(mirror *state.Mirror, log *logrus.Logger) ReportUsecase {
	return &reportUsecase{
		mirror: mirror,
		log:    log,
	}
}

// DoctorQueue returns today's visits for the doctor's assigned clinic,
// sorted ascending by queue number.
func (u *reportUsecase) DoctorQueue(ctx context.Context, doctor *entity.User) (*dto.VisitListResponse, error) {
	if !doctor.IsDoctor() {
		return nil, ErrNoAssignedClinic
	}

	today := time.Now().Format(entity.DateLayout)
	queue := u.clinicVisitsOn(doctor.Clinic, today)

	responses := make([]dto.VisitResponse, 0, len(queue))
	for i := range queue {
		name := ""
		if patient, ok := u.mirror.FindPatient(queue[i].PatientID); ok {
			name = patient.Name
		}
		responses = append(responses, *converter.VisitToResponse(&queue[i], name))
	}

	return &dto.VisitListResponse{
		Visits: responses,
		Total:  len(responses),
	}, nil
}

// DoctorDashboard scopes every figure to the doctor's own clinic and
// today's date.
func (u *reportUsecase) DoctorDashboard(ctx context.Context, doctor *entity.User) (*dto.DoctorDashboardResponse, error) {
	queue, err := u.DoctorQueue(ctx, doctor)
	if err != nil {
		return nil, err
	}

	completed := 0
	for i := range queue.Visits {
		if queue.Visits[i].Status == string(entity.VisitStatusCompleted) {
			completed++
		}
	}

	today := time.Now().Format(entity.DateLayout)
	revenueToday := decimal.Zero
	for _, r := range u.mirror.Revenues() {
		if r.ClinicID == doctor.Clinic && r.Date == today {
			revenueToday = revenueToday.Add(r.Amount)
		}
	}

	return &dto.DoctorDashboardResponse{
		PatientsToday:  queue.Total,
		CompletedToday: completed,
		RevenueToday:   revenueToday,
		Queue:          queue.Visits,
	}, nil
}

// ManagerDashboard aggregates the whole practice: total revenue, patient
// and clinic counts, today's visits, revenue per clinic and visits per day
// over the trailing week.
func (u *reportUsecase) ManagerDashboard(ctx context.Context) (*dto.ManagerDashboardResponse, error) {
	revenues := u.mirror.Revenues()
	visits := u.mirror.Visits()
	today := time.Now().Format(entity.DateLayout)

	total := decimal.Zero
	for i := range revenues {
		total = total.Add(revenues[i].Amount)
	}

	visitsToday := 0
	for i := range visits {
		if visits[i].VisitDate == today {
			visitsToday++
		}
	}

	visitsByDate := make(map[string]int, len(visits))
	for i := range visits {
		visitsByDate[visits[i].VisitDate]++
	}

	byDay := make([]dto.DailyCount, 0, trailingDays)
	for i := trailingDays - 1; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format(entity.DateLayout)
		byDay = append(byDay, dto.DailyCount{Date: date, Visits: visitsByDate[date]})
	}

	return &dto.ManagerDashboardResponse{
		TotalRevenue:  total,
		TotalPatients: len(u.mirror.Patients()),
		TotalClinics:  len(u.mirror.Clinics()),
		VisitsToday:   visitsToday,
		ByClinic:      u.revenueByClinic(revenues),
		VisitsByDay:   byDay,
	}, nil
}

func (u *reportUsecase) ReceptionDashboard(ctx context.Context) (*dto.ReceptionDashboardResponse, error) {
	today := time.Now().Format(entity.DateLayout)

	visitsToday := 0
	waitingToday := 0
	for _, v := range u.mirror.Visits() {
		if v.VisitDate != today {
			continue
		}
		visitsToday++
		if v.IsWaiting() {
			waitingToday++
		}
	}

	return &dto.ReceptionDashboardResponse{
		TotalPatients: len(u.mirror.Patients()),
		VisitsToday:   visitsToday,
		WaitingToday:  waitingToday,
	}, nil
}

// RevenueReport is the manager view: every entry plus totals per clinic
// and per day over the trailing week.
func (u *reportUsecase) RevenueReport(ctx context.Context) (*dto.RevenueReportResponse, error) {
	revenues := u.mirror.Revenues()

	total := decimal.Zero
	amountByDate := make(map[string]decimal.Decimal, len(revenues))
	entries := make([]dto.RevenueResponse, 0, len(revenues))
	for i := range revenues {
		r := &revenues[i]
		total = total.Add(r.Amount)
		amountByDate[r.Date] = amountByDate[r.Date].Add(r.Amount)

		clinicName := ""
		if clinic, ok := u.mirror.FindClinic(r.ClinicID); ok {
			clinicName = clinic.ClinicName
		}
		entries = append(entries, *converter.RevenueToResponse(r, clinicName))
	}

	byDay := make([]dto.DailyRevenue, 0, trailingDays)
	for i := trailingDays - 1; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format(entity.DateLayout)
		byDay = append(byDay, dto.DailyRevenue{Date: date, Amount: amountByDate[date]})
	}

	return &dto.RevenueReportResponse{
		Total:    total,
		ByClinic: u.revenueByClinic(revenues),
		ByDay:    byDay,
		Entries:  entries,
	}, nil
}

func (u *reportUsecase) revenueByClinic(revenues []entity.Revenue) []dto.ClinicRevenue {
	clinics := u.mirror.Clinics()
	byClinic := make([]dto.ClinicRevenue, 0, len(clinics))
	for i := range clinics {
		amount := decimal.Zero
		for j := range revenues {
			if revenues[j].ClinicID == clinics[i].ClinicID {
				amount = amount.Add(revenues[j].Amount)
			}
		}
		byClinic = append(byClinic, dto.ClinicRevenue{
			ClinicID:   clinics[i].ClinicID,
			ClinicName: clinics[i].ClinicName,
			Amount:     amount,
		})
	}
	return byClinic
}

func (u *reportUsecase) clinicVisitsOn(clinicID int, date string) []entity.Visit {
	all := u.mirror.Visits()
	visits := make([]entity.Visit, 0, len(all))
	for i := range all {
		if all[i].ClinicID == clinicID && all[i].VisitDate == date {
			visits = append(visits, all[i])
		}
	}
	sort.Slice(visits, func(i, j int) bool {
		return visits[i].QueueNumber < visits[j].QueueNumber
	})
	return visits
}
