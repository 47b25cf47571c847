package appointment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/notify"
	uc "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

func ptr[T any](v T) *T { return &v }

func TestCreateBookingExisting(t *testing.T) {
	s := demoStore(t)
	n := &recordingNotifier{}
	ctx := t.Context()

	res, err := uc.NewCreateBooking(s, nil, n, shop).Execute(ctx, uc.CreateBookingInput{
		ClientID:  "c2",
		ServiceID: "3",
		BarberID:  "b2",
		Date:      "2026-03-12",
		Time:      "9:30",
	})
	require.NoError(t, err)

	ap := res.Appointment
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, models.ChannelForm, ap.Channel)
	assert.Equal(t, "Roberto Almeida", ap.ClientName)
	assert.Equal(t, "Combo (Corte + Barba)", ap.ServiceName)
	assert.Equal(t, 70.0, ap.Price)
	assert.Equal(t, "João Tesoura", ap.BarberName)
	assert.Equal(t, "09:30", ap.Time)

	// notificação é o padrão ao criar
	require.NotNil(t, res.Notification)
	assert.Equal(t, 1, n.count())
	assert.Equal(t, notify.KindBookingConfirmation, res.Notification.Kind)
	assert.Contains(t, res.Notification.Link, "https://wa.me/5511988885678?text=")
	assert.Contains(t, res.Notification.Text, "📅 *Data:* 12/03/2026")
}

func TestCreateBookingInlineEntitiesAndAnyBarber(t *testing.T) {
	s := demoStore(t)
	ctx := t.Context()

	res, err := uc.NewCreateBooking(s, nil, &recordingNotifier{}, shop).Execute(ctx, uc.CreateBookingInput{
		NewClient:  &uc.NewClientInput{Name: "  Pedro Lima ", Phone: "(21) 98765-4321"},
		NewService: &uc.NewServiceInput{Name: "Luzes", Price: ptr(120.0)},
		Date:       today,
		Time:       "14:00",
		Notify:     ptr(false),
	})
	require.NoError(t, err)
	assert.Nil(t, res.Notification)

	ap := res.Appointment
	assert.Equal(t, models.AnyBarberName, ap.BarberName)
	assert.Empty(t, ap.BarberID)

	c, err := s.GetClient(ctx, ap.ClientID)
	require.NoError(t, err)
	assert.Equal(t, "Pedro Lima", c.Name)
	assert.Equal(t, "Novo cliente", c.Preferences)
	assert.Equal(t, today, c.LastVisit)
	assert.Zero(t, c.TotalSpent)

	svc, err := s.GetService(ctx, ap.ServiceID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultServiceDuration, svc.DurationMinutes)
}

func TestCreateBookingValidationCreatesNothing(t *testing.T) {
	tests := []struct {
		name string
		in   uc.CreateBookingInput
		code string
	}{
		{
			name: "missing time",
			in:   uc.CreateBookingInput{ClientID: "c1", ServiceID: "1", Date: today},
			code: "time_required",
		},
		{
			name: "bad time",
			in:   uc.CreateBookingInput{ClientID: "c1", ServiceID: "1", Date: today, Time: "25:00"},
			code: "invalid_time",
		},
		{
			name: "bad date",
			in:   uc.CreateBookingInput{ClientID: "c1", ServiceID: "1", Date: "10/03/2026", Time: "10:00"},
			code: "invalid_date",
		},
		{
			name: "new client without name",
			in: uc.CreateBookingInput{
				NewClient: &uc.NewClientInput{Name: "  "},
				ServiceID: "1", Date: today, Time: "10:00",
			},
			code: "client_name_required",
		},
		{
			name: "unknown client",
			in:   uc.CreateBookingInput{ClientID: "nope", ServiceID: "1", Date: today, Time: "10:00"},
			code: "client_not_found",
		},
		{
			name: "new client but missing service price",
			in: uc.CreateBookingInput{
				NewClient:  &uc.NewClientInput{Name: "Novo"},
				NewService: &uc.NewServiceInput{Name: "Luzes"},
				Date:       today, Time: "10:00",
			},
			code: "service_price_required",
		},
		{
			name: "new client but negative price",
			in: uc.CreateBookingInput{
				NewClient:  &uc.NewClientInput{Name: "Novo"},
				NewService: &uc.NewServiceInput{Name: "Luzes", Price: ptr(-1.0)},
				Date:       today, Time: "10:00",
			},
			code: "invalid_price",
		},
		{
			name: "new client but unknown service",
			in: uc.CreateBookingInput{
				NewClient: &uc.NewClientInput{Name: "Novo"},
				ServiceID: "99", Date: today, Time: "10:00",
			},
			code: "service_not_found",
		},
		{
			name: "new entities but unknown barber",
			in: uc.CreateBookingInput{
				NewClient:  &uc.NewClientInput{Name: "Novo"},
				NewService: &uc.NewServiceInput{Name: "Luzes", Price: ptr(10.0)},
				BarberID:   "b9", Date: today, Time: "10:00",
			},
			code: "barber_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := demoStore(t)
			n := &recordingNotifier{}
			ctx := t.Context()

			_, err := uc.NewCreateBooking(s, nil, n, shop).Execute(ctx, tt.in)
			require.Error(t, err)
			assert.True(t, httperr.IsValidation(err))
			assert.Equal(t, tt.code, httperr.Code(err))

			clients, _ := s.ListClients(ctx)
			services, _ := s.ListServices(ctx)
			appts, _ := s.ListAppointments(ctx)
			assert.Len(t, clients, 3)
			assert.Len(t, services, 4)
			assert.Len(t, appts, 3)
			assert.Zero(t, n.count())
		})
	}
}

func TestCreateBookingDoesNotCheckConflicts(t *testing.T) {
	s := demoStore(t)

	// a1 já ocupa 10:00 com b1; o operador pode sobrepor pelo formulário
	_, err := uc.NewCreateBooking(s, nil, &recordingNotifier{}, shop).Execute(t.Context(), uc.CreateBookingInput{
		ClientID: "c2", ServiceID: "1", BarberID: "b1", Date: today, Time: "10:00", Notify: ptr(false),
	})
	assert.NoError(t, err)
}

func TestSnapshotsSurviveServiceEdit(t *testing.T) {
	s := demoStore(t)
	ctx := t.Context()

	res, err := uc.NewCreateBooking(s, nil, &recordingNotifier{}, shop).Execute(ctx, uc.CreateBookingInput{
		ClientID: "c1", ServiceID: "1", Date: today, Time: "11:00",
	})
	require.NoError(t, err)

	require.NoError(t, s.ReplaceService(ctx, &models.Service{ID: "1", Name: "Corte Navalhado", Price: 60, DurationMinutes: 50}))

	ap, err := s.GetAppointment(ctx, res.Appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corte Degrade", ap.ServiceName)
	assert.Equal(t, 45.0, ap.Price)
}
