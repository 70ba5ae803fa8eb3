package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	calendarRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/calendar"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var (
	monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.Local)
	sunday = time.Date(2026, 10, 25, 0, 0, 0, 0, time.Local)
)

func at(day time.Time, hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func newTestUseCase(t *testing.T, opts Options) (*UseCase, *appointments.Service) {
	t.Helper()
	store := kv.NewMemoryStore()
	log := logger.NewNop()

	ledger := appointments.NewService(appointmentRepo.NewRepository(store, log), nil, nil, log)
	uc := NewUseCase(
		catalog.NewService(catalogRepo.NewRepository(store, log), log),
		calendar.NewService(calendarRepo.NewRepository(store, log), false, log),
		ledger,
		opts,
		log,
	)
	return uc, ledger
}

func book(t *testing.T, ledger *appointments.Service, serviceIdx int, start time.Time) *domain.Appointment {
	t.Helper()
	appt, err := ledger.Add(context.Background(), domain.AppointmentInput{
		Service: domain.DefaultServices()[serviceIdx],
		Client:  domain.Client{Name: "Ann", Email: "ann@example.com"},
		Date:    start,
	})
	require.NoError(t, err)
	return appt
}

func move(id string, to time.Time) *Request {
	return &Request{AppointmentID: id, Patch: domain.AppointmentPatch{Date: &to}}
}

func TestExecute_Rejections(t *testing.T) {
	ctx := context.Background()
	uc, ledger := newTestUseCase(t, Options{})

	book(t, ledger, 1, at(monday, 10, 0)) // 10:00-11:00
	late := book(t, ledger, 0, at(monday, 11, 0))
	other := book(t, ledger, 0, at(monday, 14, 0))

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{"overlaps booking", move(other.ID, at(monday, 10, 30)), ErrSlotNotAvailable},
		{"off grid", move(other.ID, at(monday, 14, 15)), ErrInvalidTimeSlot},
		{"before opening", move(other.ID, at(monday, 8, 0)), ErrInvalidTimeSlot},
		{"lunch", move(other.ID, at(monday, 12, 0)), ErrSlotNotAvailable},
		{"closed day", move(other.ID, at(sunday, 10, 0)), ErrBusinessClosed},
		{"longer service runs into lunch", &Request{AppointmentID: late.ID, ServiceID: ptr.Ptr("service-3")}, ErrSlotNotAvailable},
		{"unknown service", &Request{AppointmentID: other.ID, ServiceID: ptr.Ptr("missing")}, ErrServiceNotFound},
		{"unknown appointment", move("missing", at(monday, 15, 0)), ErrAppointmentNotFound},
		{"invalid status", &Request{AppointmentID: other.ID, Patch: domain.AppointmentPatch{Status: ptr.Ptr(domain.AppointmentStatus("archived"))}}, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	// Отклонённые изменения не сохраняются
	got, err := ledger.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(at(monday, 14, 0)))
	assert.Equal(t, "service-1", got.Service.ID)
}

func TestExecute_ForeignOffsetCannotDoubleBook(t *testing.T) {
	ctx := context.Background()
	uc, ledger := newTestUseCase(t, Options{})

	book(t, ledger, 1, at(monday, 10, 0))
	other := book(t, ledger, 1, at(monday, 15, 0))

	// Тот же момент, что и занятые 10:00, но с другим смещением
	local := at(monday, 10, 0)
	_, offset := local.Zone()
	foreign := local.In(time.FixedZone("shifted", offset-3*60*60))

	_, err := uc.Execute(ctx, move(other.ID, foreign))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	onDay, err := ledger.ListForDate(ctx, monday)
	require.NoError(t, err)
	require.Len(t, onDay, 2)
	assert.True(t, onDay[1].Date.Equal(at(monday, 15, 0)))
}

func TestExecute_Reschedule(t *testing.T) {
	ctx := context.Background()
	uc, ledger := newTestUseCase(t, Options{})

	appt := book(t, ledger, 1, at(monday, 10, 0))

	// Сдвиг внутри собственного интервала не конфликтует с самой записью
	updated, err := uc.Execute(ctx, move(appt.ID, at(monday, 10, 30)))
	require.NoError(t, err)
	assert.True(t, updated.Date.Equal(at(monday, 10, 30)))
	assert.Equal(t, time.Local, updated.Date.Location())

	updated, err = uc.Execute(ctx, &Request{AppointmentID: appt.ID, ServiceID: ptr.Ptr("service-1")})
	require.NoError(t, err)
	assert.Equal(t, "service-1", updated.Service.ID)
	assert.Equal(t, 30, updated.Service.DurationMinutes)

	// Изменение только заметок расписание не проверяет
	updated, err = uc.Execute(ctx, &Request{AppointmentID: appt.ID, Patch: domain.AppointmentPatch{Notes: ptr.Ptr("call first")}})
	require.NoError(t, err)
	assert.Equal(t, "call first", *updated.Notes)
}

func TestExecute_CancelledIsNotChecked(t *testing.T) {
	ctx := context.Background()
	uc, ledger := newTestUseCase(t, Options{})

	book(t, ledger, 1, at(monday, 10, 0))
	other := book(t, ledger, 0, at(monday, 14, 0))

	cancelled := domain.StatusCancelled
	target := at(monday, 10, 0)
	updated, err := uc.Execute(ctx, &Request{
		AppointmentID: other.ID,
		Patch:         domain.AppointmentPatch{Date: &target, Status: &cancelled},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)
}

func TestExecute_ExcludePastSlots(t *testing.T) {
	ctx := context.Background()
	uc, ledger := newTestUseCase(t, Options{ExcludePastSlots: true})
	uc.WithTimeProvider(fixedTime{now: at(monday, 11, 0)})

	appt := book(t, ledger, 0, at(monday, 15, 0))

	_, err := uc.Execute(ctx, move(appt.ID, at(monday, 10, 0)))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = uc.Execute(ctx, move(appt.ID, at(monday, 11, 0)))
	assert.NoError(t, err)
}
