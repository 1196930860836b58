package dashboard

import (
	"context"
	"encoding/json"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	billingRepo "medicore/database/repository/billing"
	doctorRepo "medicore/database/repository/doctor"
	patientRepo "medicore/database/repository/patient"
	staffRepo "medicore/database/repository/staff"
	"medicore/models"
	"medicore/services/scheduling"
	"medicore/utils"

	"go.uber.org/zap"
)

// Summary is the aggregate view shown on the admin dashboard.
type Summary struct {
	TotalPatients      int64                     `json:"totalPatients"`
	TotalDoctors       int64                     `json:"totalDoctors"`
	TotalStaff         int64                     `json:"totalStaff"`
	TodayAppointments  int64                     `json:"todayAppointments"`
	MonthlyRevenue     float64                   `json:"monthlyRevenue"`
	DoctorsAvailable   []models.Doctor           `json:"doctorsAvailable"`
	OnDutyStaff        []models.Staff            `json:"onDutyStaff"`
	RecentAppointments []models.TodayAppointment `json:"recentAppointments"`
	GeneratedAt        time.Time                 `json:"generatedAt"`
}

// DashboardService produces the operational summary for the front desk.
type DashboardService interface {
	GetSummary(ctx context.Context) (*Summary, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Patients     patientRepo.PatientRepository
	Doctors      doctorRepo.DoctorRepository
	Staff        staffRepo.StaffRepository
	Appointments appointmentRepo.AppointmentRepository
	Billings     billingRepo.BillingRepository
}

const recentAppointmentsLimit = 5

// GetSummary assembles the dashboard counts and lists. The result is cached
// briefly in Redis so a busy front desk does not hammer Mongo with
// aggregations on every refresh.
func (s *DefaultDashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	cache := utils.GetCacheClient()
	cacheKey := utils.DashboardCachePrefix + "summary"

	if raw, err := cache.Get(ctx, cacheKey).Result(); err == nil {
		var cached Summary
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	summary := &Summary{GeneratedAt: now}

	var err error
	if summary.TotalPatients, err = s.Patients.Count(); err != nil {
		return nil, err
	}
	if summary.TotalDoctors, err = s.Doctors.Count(); err != nil {
		return nil, err
	}
	if summary.TotalStaff, err = s.Staff.Count(); err != nil {
		return nil, err
	}
	if summary.TodayAppointments, err = s.Appointments.CountOnDate(ctx, today); err != nil {
		return nil, err
	}

	weekday, err := scheduling.WeekdayName(today)
	if err != nil {
		return nil, err
	}
	if summary.DoctorsAvailable, err = s.Doctors.GetAvailableOn(weekday); err != nil {
		return nil, err
	}

	if summary.OnDutyStaff, err = s.Staff.GetOnDuty(); err != nil {
		return nil, err
	}
	if summary.RecentAppointments, err = s.Appointments.RecentOnDate(ctx, today, recentAppointmentsLimit); err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	if summary.MonthlyRevenue, err = s.Billings.RevenueBetween(ctx, monthStart, monthEnd); err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(summary); err == nil {
		if err := cache.Set(ctx, cacheKey, raw, utils.DashboardCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache dashboard summary", zap.Error(err))
		}
	}

	return summary, nil
}
