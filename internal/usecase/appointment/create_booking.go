package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type NewClientInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type NewServiceInput struct {
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
}

// CreateBookingInput é o rascunho do formulário: cliente e serviço existentes
// (por id) ou novos (inline).
type CreateBookingInput struct {
	UserID string `json:"-"`

	ClientID   string           `json:"client_id"`
	NewClient  *NewClientInput  `json:"new_client"`
	ServiceID  string           `json:"service_id"`
	NewService *NewServiceInput `json:"new_service"`
	BarberID   string           `json:"barber_id"`

	Date string `json:"date"`
	Time string `json:"time"`

	// Notify nil = true ao criar.
	Notify *bool `json:"notify"`
}

type BookingResult struct {
	Appointment  *models.Appointment `json:"appointment"`
	Notification *notify.Message     `json:"notification,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
	shop     Shop
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier Notifier,
	shop Shop,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		shop:     shop,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida tudo antes de gravar qualquer coisa: uma submissão recusada
// não deixa cliente nem serviço novos para trás. O formulário não checa
// conflito de horário; o operador decide.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*BookingResult, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora
	// --------------------------------------------------
	if strings.TrimSpace(in.Time) == "" {
		return nil, httperr.ErrValidation("time", "time_required")
	}
	hour, ok := domain.NormalizeTime(strings.TrimSpace(in.Time))
	if !ok {
		return nil, httperr.ErrValidation("time", "invalid_time")
	}
	if !domain.ValidDate(in.Date) {
		return nil, httperr.ErrValidation("date", "invalid_date")
	}

	// --------------------------------------------------
	// 2️⃣ Cliente (existente ou novo)
	// --------------------------------------------------
	var client *models.Client
	if in.NewClient != nil {
		name := strings.TrimSpace(in.NewClient.Name)
		if name == "" {
			return nil, httperr.ErrValidation("new_client.name", "client_name_required")
		}
		client = &models.Client{
			Name:        name,
			Phone:       strings.TrimSpace(in.NewClient.Phone),
			LastVisit:   uc.shop.Today(),
			Preferences: "Novo cliente",
		}
	} else {
		c, err := uc.repo.GetClient(ctx, in.ClientID)
		if err != nil {
			return nil, httperr.ErrValidation("client_id", "client_not_found")
		}
		client = c
	}

	// --------------------------------------------------
	// 3️⃣ Serviço (existente ou novo)
	// --------------------------------------------------
	var service *models.Service
	if in.NewService != nil {
		svc, err := buildService(in.NewService.Name, in.NewService.Price, in.NewService.DurationMinutes)
		if err != nil {
			return nil, err
		}
		service = svc
	} else {
		s, err := uc.repo.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, httperr.ErrValidation("service_id", "service_not_found")
		}
		service = s
	}

	// --------------------------------------------------
	// 4️⃣ Profissional (opcional)
	// --------------------------------------------------
	barberName := models.AnyBarberName
	if in.BarberID != "" {
		b, err := uc.repo.GetBarber(ctx, in.BarberID)
		if err != nil {
			return nil, httperr.ErrValidation("barber_id", "barber_not_found")
		}
		barberName = b.Name
	}

	// --------------------------------------------------
	// 5️⃣ Gravação: novos cadastros primeiro, depois a reserva
	// --------------------------------------------------
	if client.ID == "" {
		if err := uc.repo.CreateClient(ctx, client); err != nil {
			return nil, err
		}
		dispatchAudit(uc.audit, in.UserID, "client_created", "client", client.ID, nil)
	}
	if service.ID == "" {
		if err := uc.repo.CreateService(ctx, service); err != nil {
			return nil, err
		}
		dispatchAudit(uc.audit, in.UserID, "service_created", "service", service.ID, nil)
	}

	now := uc.shop.Now()
	ap := &models.Appointment{
		ClientID:    client.ID,
		ClientName:  client.Name,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Price:       service.Price,
		BarberID:    in.BarberID,
		BarberName:  barberName,
		Date:        in.Date,
		Time:        hour,
		Status:      string(domain.InitialStatus(models.ChannelForm)),
		Channel:     models.ChannelForm,
		CreatedAt:   now,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	dispatchAudit(uc.audit, in.UserID, "appointment_created", "appointment", ap.ID, map[string]string{
		"channel": ap.Channel,
		"date":    ap.Date,
		"time":    ap.Time,
	})

	// --------------------------------------------------
	// 6️⃣ Notificação
	// --------------------------------------------------
	out := &BookingResult{Appointment: ap}
	if in.Notify == nil || *in.Notify {
		msg := uc.notifier.Dispatch(notify.Message{
			Kind:          notify.KindBookingConfirmation,
			AppointmentID: ap.ID,
			ClientID:      client.ID,
			Phone:         client.Phone,
			Text:          notify.BookingConfirmation(uc.shop.Name, *ap),
		})
		out.Notification = &msg
	}

	return out, nil
}

// buildService valida um serviço novo; duração ausente ou inválida vira 30.
func buildService(name string, price *float64, duration int) (*models.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.ErrValidation("name", "service_name_required")
	}
	if price == nil {
		return nil, httperr.ErrValidation("price", "service_price_required")
	}
	if *price < 0 {
		return nil, httperr.ErrValidation("price", "invalid_price")
	}
	if duration <= 0 {
		duration = models.DefaultServiceDuration
	}

	return &models.Service{
		Name:            name,
		Price:           *price,
		DurationMinutes: duration,
	}, nil
}
