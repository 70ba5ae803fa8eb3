package appointments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// fakeNotifier запоминает отправленные уведомления
type fakeNotifier struct {
	mu     sync.Mutex
	result bool
	sent   []string
}

func newFakeNotifier(result bool) *fakeNotifier {
	return &fakeNotifier{result: result}
}

func (n *fakeNotifier) record(kind string, appt domain.Appointment) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, kind+":"+appt.ID)
	return n.result
}

func (n *fakeNotifier) SendConfirmation(_ context.Context, appt domain.Appointment) bool {
	return n.record("confirmation", appt)
}

func (n *fakeNotifier) SendCancellation(_ context.Context, appt domain.Appointment) bool {
	return n.record("cancellation", appt)
}

func (n *fakeNotifier) SendReminder(_ context.Context, appt domain.Appointment) bool {
	return n.record("reminder", appt)
}

func (n *fakeNotifier) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}

var day = time.Date(2026, 10, 19, 0, 0, 0, 0, time.Local)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func newInput(start time.Time) domain.AppointmentInput {
	return domain.AppointmentInput{
		Service: domain.DefaultServices()[0],
		Client:  domain.Client{Name: "Ann", Email: "ann@example.com"},
		Date:    start,
	}
}

func newTestService(notifier Notifier) (*Service, kv.Store) {
	store := kv.NewMemoryStore()
	log := logger.NewNop()
	return NewService(appointmentRepo.NewRepository(store, log), notifier, nil, log), store
}

func TestService_AddPersistsAndConfirms(t *testing.T) {
	ctx := context.Background()
	notifier := newFakeNotifier(true)
	svc, store := newTestService(notifier)

	appt, err := svc.Add(ctx, newInput(at(10, 0)))
	require.NoError(t, err)
	svc.Wait()

	assert.NotEmpty(t, appt.ID)
	assert.NotEmpty(t, appt.Client.ID)
	assert.Equal(t, domain.StatusScheduled, appt.Status)
	assert.Equal(t, []string{"confirmation:" + appt.ID}, notifier.calls())

	// Журнал поверх того же хранилища видит запись
	log := logger.NewNop()
	reloaded := NewService(appointmentRepo.NewRepository(store, log), nil, nil, log)
	got, err := reloaded.Get(ctx, appt.ID)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(at(10, 0)))
}

func TestService_NotificationFailureKeepsAppointment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(newFakeNotifier(false))

	appt, err := svc.Add(ctx, newInput(at(10, 0)))
	require.NoError(t, err)
	svc.Wait()

	got, err := svc.Get(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, got.Status)
}

func TestService_AddValidation(t *testing.T) {
	svc, _ := newTestService(nil)

	input := newInput(at(10, 0))
	input.Client.Email = ""
	_, err := svc.Add(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	input = newInput(time.Time{})
	_, err = svc.Add(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()
	notifier := newFakeNotifier(true)
	svc, _ := newTestService(notifier)

	appt, err := svc.Add(ctx, newInput(at(10, 0)))
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	_, err = svc.Cancel(ctx, appt.ID)
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	svc.Wait()
	assert.ElementsMatch(t, []string{"confirmation:" + appt.ID, "cancellation:" + appt.ID}, notifier.calls())

	// Отменённая запись остаётся в журнале, но не занимает день
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	onDay, err := svc.ListForDate(ctx, day)
	require.NoError(t, err)
	assert.Empty(t, onDay)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	notifier := newFakeNotifier(true)
	svc, _ := newTestService(notifier)

	appt, err := svc.Add(ctx, newInput(at(10, 0)))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, appt.ID))
	assert.ErrorIs(t, svc.Delete(ctx, appt.ID), ErrAppointmentNotFound)

	_, err = svc.Get(ctx, appt.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	svc.Wait()
	assert.Contains(t, notifier.calls(), "cancellation:"+appt.ID)
}

func TestService_UpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(newFakeNotifier(true))

	appt, err := svc.Add(ctx, newInput(at(10, 0)))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, appt.ID, domain.AppointmentPatch{
		Notes:  ptr.Ptr("bring documents"),
		Status: ptr.Ptr(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, "bring documents", *updated.Notes)

	_, err = svc.Update(ctx, appt.ID, domain.AppointmentPatch{Status: ptr.Ptr(domain.StatusScheduled)})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Update(ctx, appt.ID, domain.AppointmentPatch{Status: ptr.Ptr(domain.AppointmentStatus("archived"))})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Update(ctx, "missing", domain.AppointmentPatch{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	svc.Wait()
}

func TestService_Queries(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	late, err := svc.Add(ctx, newInput(at(15, 0)))
	require.NoError(t, err)
	early, err := svc.Add(ctx, newInput(at(9, 0)))
	require.NoError(t, err)

	other := newInput(at(10, 0).AddDate(0, 0, 1))
	other.Client.Email = "bob@example.com"
	_, err = svc.Add(ctx, other)
	require.NoError(t, err)

	onDay, err := svc.ListForDate(ctx, day.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, onDay, 2)
	assert.Equal(t, early.ID, onDay[0].ID)
	assert.Equal(t, late.ID, onDay[1].ID)

	mine, err := svc.ListForClient(ctx, "ANN@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestService_SendReminder(t *testing.T) {
	ctx := context.Background()
	notifier := newFakeNotifier(true)
	svc, _ := newTestService(notifier)

	appt, err := svc.Add(ctx, newInput(at(10, 0)))
	require.NoError(t, err)

	sent, err := svc.SendReminder(ctx, appt.ID)
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Contains(t, notifier.calls(), "reminder:"+appt.ID)

	_, err = svc.SendReminder(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	svc.Wait()
}

func TestService_BookValidatesUnderLock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)
	errTaken := errors.New("taken")

	// Допускаем запись только если на этот день ещё нет активных записей
	onlyOne := func(sameDay []domain.Appointment) error {
		if len(sameDay) > 0 {
			return errTaken
		}
		return nil
	}

	const attempts = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Book(ctx, newInput(at(10, 0)), onlyOne); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, errTaken)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestService_UpdateToCancelledSendsCancellation(t *testing.T) {
	ctx := context.Background()
	notifier := newFakeNotifier(true)
	svc, _ := newTestService(notifier)

	appt, err := svc.Add(ctx, newInput(at(10, 0)))
	require.NoError(t, err)
	svc.Wait()

	_, err = svc.Update(ctx, appt.ID, domain.AppointmentPatch{Status: ptr.Ptr(domain.StatusCancelled)})
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, []string{"confirmation:" + appt.ID, "cancellation:" + appt.ID}, notifier.calls())
}

func TestService_UpdateStoresLocalTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	appt, err := svc.Add(ctx, newInput(at(9, 0)))
	require.NoError(t, err)

	// Тот же момент 10:00, но с чужим смещением
	local := at(10, 0)
	_, offset := local.Zone()
	foreign := local.In(time.FixedZone("shifted", offset+3*60*60))

	updated, err := svc.Update(ctx, appt.ID, domain.AppointmentPatch{Date: &foreign})
	require.NoError(t, err)
	assert.True(t, updated.Date.Equal(local))
	assert.Equal(t, domain.Interval{Start: 600, End: 600 + updated.Service.DurationMinutes}, domain.AppointmentInterval(*updated))
}

func TestService_UpdateCheckedSeesOtherAppointmentsOfDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)
	errTaken := errors.New("taken")

	first, err := svc.Add(ctx, newInput(at(10, 0)))
	require.NoError(t, err)
	second, err := svc.Add(ctx, newInput(at(14, 0)))
	require.NoError(t, err)
	_, err = svc.Add(ctx, newInput(at(10, 0).AddDate(0, 0, 1)))
	require.NoError(t, err)

	var seen []domain.Appointment
	noOverlap := func(updated domain.Appointment, sameDay []domain.Appointment) error {
		seen = sameDay
		candidate := domain.AppointmentInterval(updated)
		for _, other := range sameDay {
			if candidate.Overlaps(domain.AppointmentInterval(other)) {
				return errTaken
			}
		}
		return nil
	}

	// Перенос второй записи на время первой отклоняется, запись не меняется
	_, err = svc.UpdateChecked(ctx, second.ID, domain.AppointmentPatch{Date: ptr.Ptr(at(10, 0))}, noOverlap)
	assert.ErrorIs(t, err, errTaken)
	require.Len(t, seen, 1)
	assert.Equal(t, first.ID, seen[0].ID)

	got, err := svc.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(at(14, 0)))

	// Запись не конфликтует сама с собой
	_, err = svc.UpdateChecked(ctx, second.ID, domain.AppointmentPatch{Date: ptr.Ptr(at(14, 30))}, noOverlap)
	assert.NoError(t, err)
}
