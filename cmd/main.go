package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Leganyst/hotel-booking/internal/config"
	"github.com/Leganyst/hotel-booking/internal/db"
	"github.com/Leganyst/hotel-booking/internal/model"
	"github.com/Leganyst/hotel-booking/internal/notification"
	"github.com/Leganyst/hotel-booking/internal/repository"
	"github.com/Leganyst/hotel-booking/internal/service"
	"github.com/Leganyst/hotel-booking/internal/transport/web"
)

func main() {
	// .env опционален: в контейнере переменные приходят из окружения.
	_ = godotenv.Load()

	// 1. Конфиги из env.
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 3. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Репозитории (реализации на GORM).
	roomRepo := repository.NewGormRoomRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	customerRepo := repository.NewGormCustomerRepository(gormDB)
	paymentRepo := repository.NewGormPaymentRepository(gormDB)
	userRepo := repository.NewGormUserRepository(gormDB)
	sessionRepo := repository.NewGormSessionRepository(gormDB)

	// 5. Канал уведомлений: Mailjet при наличии ключей, иначе лог.
	var notifier notification.Notifier
	if appCfg.MailjetAPIKey != "" && appCfg.MailjetSecretKey != "" {
		notifier = notification.NewMailjetNotifier(
			appCfg.MailjetAPIKey,
			appCfg.MailjetSecretKey,
			appCfg.MailFromEmail,
			appCfg.MailFromName,
		)
	} else {
		notifier = notification.NewLogNotifier()
	}

	// 6. Сервисы гостиничного ядра.
	statusSvc := service.NewRoomStatusService(gormDB, roomRepo, bookingRepo)
	bookingSvc := service.NewBookingService(gormDB, roomRepo, bookingRepo, customerRepo, statusSvc, notifier)
	if appCfg.DownPayment {
		bookingSvc.SetPostCreateHook(service.DownPaymentHook(paymentRepo))
	}
	paymentSvc := service.NewPaymentService(bookingRepo, paymentRepo)
	identitySvc := service.NewIdentityService(userRepo, sessionRepo, appCfg.TokenSecret, appCfg.TokenTTL)

	// 7. HTTP-сервер.
	server := web.New(identitySvc, bookingSvc, paymentSvc, statusSvc, roomRepo, customerRepo)
	httpServer := &http.Server{
		Addr:    appCfg.HTTPAddr,
		Handler: server.Router(),
	}

	log.Printf("hotel booking API listening on %s", appCfg.HTTPAddr)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	// 8. Фоновый пересчёт статусов номеров.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	if appCfg.SweepInterval > 0 {
		go runStatusSweep(sweepCtx, statusSvc, appCfg.SweepInterval)
	}

	// 9. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down HTTP server...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
}

// runStatusSweep периодически пересчитывает статусы номеров. Проход
// идемпотентен, поэтому частота запуска некритична.
func runStatusSweep(ctx context.Context, svc *service.RoomStatusService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			changed, err := svc.RecomputeAll(ctx)
			if err != nil {
				log.Printf("room status sweep: %v", err)
				continue
			}
			if changed > 0 {
				log.Printf("room status sweep: %d room(s) updated", changed)
			}
		}
	}
}
