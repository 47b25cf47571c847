package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

const upcomingLimit = 3

type DashboardStats struct {
	Date         string                   `json:"date"`
	TodayCount   int                      `json:"today_count"`
	Revenue      float64                  `json:"revenue"`
	PendingCount int                      `json:"pending_count"`
	Upcoming     []dto.AppointmentListDTO `json:"upcoming"`
}

type GetDashboard struct {
	repo domain.Repository
	shop Shop
}

func NewGetDashboard(repo domain.Repository, shop Shop) *GetDashboard {
	return &GetDashboard{repo: repo, shop: shop}
}

// Execute resume o dia. Receita soma confirmados e concluídos de hoje; os
// próximos são os três primeiros ativos por horário, de qualquer dia.
func (uc *GetDashboard) Execute(ctx context.Context) (*DashboardStats, error) {
	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	today := uc.shop.Today()
	stats := &DashboardStats{Date: today}

	for _, ap := range appointments {
		if ap.Date != today {
			continue
		}
		stats.TodayCount++

		switch domain.Status(ap.Status) {
		case domain.StatusConfirmed, domain.StatusCompleted:
			stats.Revenue += ap.Price
		case domain.StatusPending:
			stats.PendingCount++
		}
	}

	active := filterAppointments(appointments, func(ap models.Appointment) bool {
		return !domain.Status(ap.Status).Terminal()
	})
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Time < active[j].Time
	})
	if len(active) > upcomingLimit {
		active = active[:upcomingLimit]
	}
	stats.Upcoming = dto.NewAppointmentList(active)

	return stats, nil
}
