// Package app собирает репозитории, сервисы и экраны поверх открытого пула
package app

import (
	adminScreen "github.com/m04kA/TravelAgency-BackOffice/internal/screens/admin"
	authScreen "github.com/m04kA/TravelAgency-BackOffice/internal/screens/auth"
	bookingDialogScreen "github.com/m04kA/TravelAgency-BackOffice/internal/screens/bookingdialog"
	bookingsScreen "github.com/m04kA/TravelAgency-BackOffice/internal/screens/bookings"
	clientsScreen "github.com/m04kA/TravelAgency-BackOffice/internal/screens/clients"
	financeScreen "github.com/m04kA/TravelAgency-BackOffice/internal/screens/finance"
	reportsScreen "github.com/m04kA/TravelAgency-BackOffice/internal/screens/reports"
	reviewsScreen "github.com/m04kA/TravelAgency-BackOffice/internal/screens/reviews"
	toursScreen "github.com/m04kA/TravelAgency-BackOffice/internal/screens/tours"

	auditRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/audit"
	bookingRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/booking"
	clientRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/client"
	employeeRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/employee"
	paymentRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/payment"
	reportRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/report"
	reviewRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/review"
	tourRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/tour"

	adminService "github.com/m04kA/TravelAgency-BackOffice/internal/service/admin"
	authService "github.com/m04kA/TravelAgency-BackOffice/internal/service/auth"
	bookingsService "github.com/m04kA/TravelAgency-BackOffice/internal/service/bookings"
	clientsService "github.com/m04kA/TravelAgency-BackOffice/internal/service/clients"
	paymentsService "github.com/m04kA/TravelAgency-BackOffice/internal/service/payments"
	reportsService "github.com/m04kA/TravelAgency-BackOffice/internal/service/reports"
	reviewsService "github.com/m04kA/TravelAgency-BackOffice/internal/service/reviews"
	toursService "github.com/m04kA/TravelAgency-BackOffice/internal/service/tours"
	createBookingUC "github.com/m04kA/TravelAgency-BackOffice/internal/usecase/create_booking"

	"github.com/m04kA/TravelAgency-BackOffice/internal/session"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/dbmetrics"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/txmanager"
)

// Logger общий логгер всех слоёв
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Deps внешние зависимости приложения
type Deps struct {
	DB       *dbmetrics.DB
	Verifier authService.CredentialVerifier
	// Exporter может быть nil, тогда выгрузка отчётов недоступна
	Exporter   reportsScreen.Exporter
	ReportsDir string
	BcryptCost int
	Logger     Logger
}

// App контроллеры экранов и сессия текущего пользователя
type App struct {
	Session *session.Session

	Login         *authScreen.Login
	Register      *authScreen.Register
	Tours         *toursScreen.Controller
	Bookings      *bookingsScreen.Controller
	BookingDialog *bookingDialogScreen.Controller
	Finance       *financeScreen.Controller
	Clients       *clientsScreen.Controller
	Reviews       *reviewsScreen.Controller
	Admin         *adminScreen.Controller
	Reports       *reportsScreen.Controller
}

// New собирает приложение
func New(d Deps) *App {
	log := d.Logger
	sess := session.New()

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(d.DB)
	clientRepository := clientRepo.NewRepository(d.DB)
	employeeRepository := employeeRepo.NewRepository(d.DB)
	paymentRepository := paymentRepo.NewRepository(d.DB)
	tourRepository := tourRepo.NewRepository(d.DB)
	reviewRepository := reviewRepo.NewRepository(d.DB)
	reportRepository := reportRepo.NewRepository(d.DB)
	auditRepository := auditRepo.NewRepository(d.DB)

	txMgr := txmanager.NewTransactionManager(d.DB)

	// Use cases
	createBooking := createBookingUC.NewUseCase(tourRepository, bookingRepository, txMgr, log)

	// Сервисы
	authSvc := authService.NewService(clientRepository, employeeRepository, d.Verifier, log, d.BcryptCost)
	toursSvc := toursService.NewService(tourRepository, sess, log)
	paymentsSvc := paymentsService.NewService(bookingRepository, paymentRepository, txMgr, sess, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, createBooking, paymentsSvc, txMgr, sess, log)
	clientsSvc := clientsService.NewService(clientRepository, sess, log)
	reviewsSvc := reviewsService.NewService(reviewRepository, bookingRepository, sess, log)
	adminSvc := adminService.NewService(employeeRepository, auditRepository, adminService.RealTimeProvider{}, sess, log)
	reportsSvc := reportsService.NewService(reportRepository, sess, log)

	// Экраны
	return &App{
		Session:       sess,
		Login:         authScreen.NewLogin(authSvc, sess, log),
		Register:      authScreen.NewRegister(authSvc, log),
		Tours:         toursScreen.NewController(toursSvc, log),
		Bookings:      bookingsScreen.NewController(bookingsSvc, reviewsSvc, sess, log),
		BookingDialog: bookingDialogScreen.NewController(bookingsSvc, clientsSvc, sess, log),
		Finance:       financeScreen.NewController(paymentsSvc, log),
		Clients:       clientsScreen.NewController(clientsSvc, log),
		Reviews:       reviewsScreen.NewController(reviewsSvc, log),
		Admin:         adminScreen.NewController(adminSvc, log),
		Reports:       reportsScreen.NewController(reportsSvc, adminSvc, d.Exporter, d.ReportsDir, log),
	}
}
