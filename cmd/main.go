package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/cancel_appointment"
	checkRemindersHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/check_reminders"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_service"
	createSpecialDateHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_special_date"
	createUserHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_user"
	currentUserHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/current_user"
	deleteAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_appointment"
	deleteServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_service"
	deleteSpecialDateHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_special_date"
	deleteUserHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_user"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableDatesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_calendar"
	getNotificationPreferencesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_notification_preferences"
	getUserAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_user_appointments"
	getWhatsAppConfigHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_whatsapp_config"
	listAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_services"
	listUsersHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_users"
	loginHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/register"
	sendReminderHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/send_reminder"
	sendTestNotificationHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/send_test_notification"
	updateAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment"
	updateBusinessHoursHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_business_hours"
	updateNotificationPreferencesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_notification_preferences"
	updateServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_service"
	updateSpecialDateHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_special_date"
	updateUserHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_user"
	updateWhatsAppConfigHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_whatsapp_config"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	calendarRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/calendar"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
	notificationRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/notification"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/email"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/whatsapp"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	calendarService "github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	catalogService "github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	notificationsService "github.com/m04kA/SMC-AppointmentService/internal/service/notifications"
	usersService "github.com/m04kA/SMC-AppointmentService/internal/service/users"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getAvailableDatesUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	updateAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). Методы Metrics безопасны для nil
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем хранилище ключ-значение
	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer closeStore()

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(store, log)
	calendarRepository := calendarRepo.NewRepository(store, log)
	catalogRepository := catalogRepo.NewRepository(store, log)
	userRepository := userRepo.NewRepository(store, log)
	notificationRepository := notificationRepo.NewRepository(store, log)

	// Инициализируем интеграционных клиентов
	var emailSender notificationsService.EmailSender
	if cfg.Notifications.SendGrid.APIKey != "" {
		emailSender = email.NewSendGridSender(email.SendGridConfig{
			APIKey:    cfg.Notifications.SendGrid.APIKey,
			FromEmail: cfg.Notifications.SendGrid.FromEmail,
			FromName:  cfg.Notifications.SendGrid.FromName,
		}, log)
		log.Info("Email delivery via SendGrid (from=%s)", cfg.Notifications.SendGrid.FromEmail)
	} else {
		emailSender = email.NewSimulatedSender(time.Duration(cfg.Notifications.SimulatedDelayMs)*time.Millisecond, log)
		log.Info("Email delivery simulated (delay=%dms)", cfg.Notifications.SimulatedDelayMs)
	}
	whatsappClient := whatsapp.NewClient(time.Duration(cfg.Notifications.WhatsAppTimeout)*time.Second, log)

	// Инициализируем сервисы
	notificationsSvc := notificationsService.NewService(
		notificationRepository,
		emailSender,
		whatsappClient,
		metricsCollector,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		notificationsSvc,
		metricsCollector,
		log,
	)
	calendarSvc := calendarService.NewService(calendarRepository, cfg.Scheduling.SpecialDateLunch, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	usersSvc := usersService.NewService(
		userRepository,
		usersService.AdminSeed{
			Name:     cfg.Admin.Name,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		},
		cfg.Admin.HashCost,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		calendarSvc,
		appointmentsSvc,
		catalogSvc,
		metricsCollector,
		getAvailableSlotsUC.Options{
			StepMinutes:      cfg.Scheduling.SlotStepMinutes,
			ExcludePastSlots: cfg.Scheduling.ExcludePastSlots,
		},
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		calendarSvc,
		getAvailableSlotsUseCase,
		cfg.Scheduling.HorizonDays,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		catalogSvc,
		calendarSvc,
		appointmentsSvc,
		createAppointmentUC.Options{
			StepMinutes:        cfg.Scheduling.SlotStepMinutes,
			RevalidateOnCreate: cfg.Scheduling.RevalidateOnCreate,
			ExcludePastSlots:   cfg.Scheduling.ExcludePastSlots,
		},
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		catalogSvc,
		calendarSvc,
		appointmentsSvc,
		updateAppointmentUC.Options{
			StepMinutes:      cfg.Scheduling.SlotStepMinutes,
			ExcludePastSlots: cfg.Scheduling.ExcludePastSlots,
		},
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	login := loginHandler.NewHandler(usersSvc, log)
	register := registerHandler.NewHandler(usersSvc, log)
	logout := logoutHandler.NewHandler(usersSvc, log)
	currentUser := currentUserHandler.NewHandler(usersSvc, log)

	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, usersSvc, log)
	getNotificationPreferences := getNotificationPreferencesHandler.NewHandler(notificationsSvc, log)
	updateNotificationPreferences := updateNotificationPreferencesHandler.NewHandler(notificationsSvc, log)
	checkReminders := checkRemindersHandler.NewHandler(appointmentsSvc, usersSvc, notificationsSvc, log)

	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	sendReminder := sendReminderHandler.NewHandler(appointmentsSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(calendarSvc, log)
	createSpecialDate := createSpecialDateHandler.NewHandler(calendarSvc, log)
	updateSpecialDate := updateSpecialDateHandler.NewHandler(calendarSvc, log)
	deleteSpecialDate := deleteSpecialDateHandler.NewHandler(calendarSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getWhatsAppConfig := getWhatsAppConfigHandler.NewHandler(notificationsSvc, log)
	updateWhatsAppConfig := updateWhatsAppConfigHandler.NewHandler(notificationsSvc, log)
	sendTestNotification := sendTestNotificationHandler.NewHandler(notificationsSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	createUser := createUserHandler.NewHandler(usersSvc, log)
	updateUser := updateUserHandler.NewHandler(usersSvc, log)
	deleteUser := deleteUserHandler.NewHandler(usersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг и расписание
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату и ближайшие открытые даты
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Запись на приём доступна без учётной записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// --- Аутентификация ---
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", currentUser.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(usersSvc, log))

	// --- Записи клиента (владелец или администратор) ---
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Уведомления пользователя ---
	protected.HandleFunc("/users/{userId}/notification-preferences", getNotificationPreferences.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/notification-preferences", updateNotificationPreferences.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/users/{userId}/reminders", checkReminders.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-ID администратора)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/appointments/{appointmentId}/reminder", sendReminder.Handle).Methods(http.MethodPost)

	// --- Расписание ---
	admin.HandleFunc("/business-hours/{dayOfWeek}", updateBusinessHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/special-dates", createSpecialDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/special-dates/{specialDateId}", updateSpecialDate.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/special-dates/{specialDateId}", deleteSpecialDate.Handle).Methods(http.MethodDelete)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Уведомления ---
	admin.HandleFunc("/whatsapp-config", getWhatsAppConfig.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/whatsapp-config", updateWhatsAppConfig.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/notifications/test", sendTestNotification.Handle).Methods(http.MethodPost)

	// --- Пользователи ---
	admin.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/users/{userId}", updateUser.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{userId}", deleteUser.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся фоновых уведомлений
	appointmentsSvc.Wait()

	log.Info("Server stopped gracefully")
}

// openStore подключает хранилище, выбранное в конфигурации
func openStore(cfg *config.Config, log *logger.Logger) (kv.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		store := kv.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return store, func() { db.Close() }, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, err
		}

		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		return kv.NewRedisStore(client, cfg.Redis.KeyPrefix), func() { client.Close() }, nil

	default:
		log.Info("Using in-memory storage, data is lost on restart")
		return kv.NewMemoryStore(), func() {}, nil
	}
}
