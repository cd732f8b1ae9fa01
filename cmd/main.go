package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers/get_booking"
	getDayBookingsHandler "github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers/get_day_bookings"
	getFacilityHandler "github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers/get_facility"
	getScheduleBoardHandler "github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers/get_schedule_board"
	resolveSlotHandler "github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers/resolve_slot"
	updateBookingHandler "github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-SurgeryBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SurgeryBoard/internal/config"
	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SurgeryBoard/internal/infra/storage/booking"
	bookingsService "github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/get_available_slots"
	getScheduleBoardUC "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/get_schedule_board"
	resolveSlotUC "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/resolve_slot"
	updateBookingUC "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/update_booking"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/logger"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/metrics"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/txmanager"
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

	log.Info("Starting SMC-SurgeryBoard...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// nil коллектор безопасен: методы метрик ничего не делают
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	facility := cfg.ToFacility()
	log.Info("Facility: %02d:00-%02d:00, step=%d, snap=%d, rooms=%d",
		facility.StartHour, facility.EndHour, facility.StepMinutes, facility.SnapMinutes, len(facility.Rooms))

	// Рабочий набор бронирований живёт только в памяти процесса
	bookingRepository := bookingRepo.NewRepository()
	txMgr := txmanager.NewTransactionManager()

	if cfg.Seed.Demo {
		today := time.Now().Format(domain.DateFormat)
		if err := bookingRepository.Seed(context.Background(), bookingRepo.DemoBookings(today)); err != nil {
			log.Fatal("Failed to seed demo bookings: %v", err)
		}
		log.Info("Demo bookings loaded for %s", today)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		facility,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		facility,
		metricsCollector,
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		facility,
		metricsCollector,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, facility, log)
	getScheduleBoardUseCase := getScheduleBoardUC.NewUseCase(bookingRepository, facility, log)
	resolveSlotUseCase := resolveSlotUC.NewUseCase(bookingRepository, facility, log)

	// Инициализируем handlers
	getFacility := getFacilityHandler.NewHandler(facility, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	resolveSlot := resolveSlotHandler.NewHandler(resolveSlotUseCase, log)
	getScheduleBoard := getScheduleBoardHandler.NewHandler(getScheduleBoardUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Конфигурация площадки
	api.HandleFunc("/facility", getFacility.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Операционные ---
	api.HandleFunc("/rooms/{roomId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/slot-at", resolveSlot.Handle).Methods(http.MethodGet)

	// --- Доска ---
	api.HandleFunc("/board", getScheduleBoard.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped gracefully (bookings in session: %d)", bookingRepository.Count())
}
