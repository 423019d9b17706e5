package router

import (
	"context"
	"fmt"
	"net/http"
	"partyinbangalore-backend/booking"
	"partyinbangalore-backend/config"
	"partyinbangalore-backend/factory"
	"partyinbangalore-backend/handler"
	"partyinbangalore-backend/healthcheck"
	"partyinbangalore-backend/middleware"
	"partyinbangalore-backend/model"
	"partyinbangalore-backend/otp"
	"partyinbangalore-backend/payment"
	"partyinbangalore-backend/reservation"
	"partyinbangalore-backend/response"
	"partyinbangalore-backend/store"
	"partyinbangalore-backend/twilio"
	"partyinbangalore-backend/upload"

	"github.com/gorilla/mux"
	"github.com/spf13/viper"
)

// Router returns the router for all the API handlers.
func Router(ctx context.Context) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SetCorrelationIDHeader)
	r.Use(middleware.PanicHandler)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.ResourceNotFound(fmt.Sprintf("The requested resource was not found: path: %s, method: %s", req.URL.Path, req.Method), "The requested resource was not found!").Send(req.Context(), w)
	})

	r.Use(middleware.ResponseTimeLogging)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.SetContentTypeHeader)

	f := factory.NewFactory()
	secret := viper.GetString(config.Secret)

	st := store.NewStore(f.DB(ctx))

	sender := twilio.NewSender(
		viper.GetString(config.TwilioAccountSID),
		viper.GetString(config.TwilioAuthToken),
		viper.GetString(config.TwilioURL),
		viper.GetString(config.TwilioFrom),
	)
	otpService := otp.NewService(otp.NewRedisStore(f.Redis(ctx), secret), sender)

	gateway := payment.NewGateway(
		viper.GetString(config.RazorpayKeyID),
		viper.GetString(config.RazorpayKeySecret),
		viper.GetString(config.RazorpayURL),
	)
	bookingService := booking.NewService(st, gateway, viper.GetFloat64(config.PlatformFee))
	reservationService := reservation.NewService(st, gateway)

	uploader := upload.NewUploader(
		viper.GetString(config.CloudinaryURL),
		viper.GetString(config.CloudinaryCloudName),
		viper.GetString(config.CloudinaryUploadPreset),
	)

	r.HandleFunc("/healthcheck", healthcheck.Self).Methods(http.MethodGet)
	baseRouter := r.PathPrefix("/v1").Subrouter()

	authRouter := baseRouter.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/otp", handler.RequestOTP(otpService)).Methods(http.MethodPost)
	authRouter.HandleFunc("/otp/verify", handler.VerifyOTP(otpService, st, secret)).Methods(http.MethodPost)
	authRouter.HandleFunc("/login", handler.Login(st, secret)).Methods(http.MethodPost)

	publicRouter := baseRouter.PathPrefix("/public").Subrouter()
	publicRouter.HandleFunc("/events", handler.Events(st)).Methods(http.MethodGet)
	publicRouter.HandleFunc("/events/{id}", handler.Event(st)).Methods(http.MethodGet)
	publicRouter.HandleFunc("/venues", handler.Venues(st)).Methods(http.MethodGet)
	publicRouter.HandleFunc("/venues/{id}", handler.Venue(st)).Methods(http.MethodGet)
	publicRouter.HandleFunc("/categories", handler.Categories(st)).Methods(http.MethodGet)
	publicRouter.HandleFunc("/promos", handler.Promos(st)).Methods(http.MethodGet)
	publicRouter.HandleFunc("/partners", handler.Partners(st)).Methods(http.MethodGet)
	publicRouter.HandleFunc("/galleries", handler.Galleries(st)).Methods(http.MethodGet)
	publicRouter.HandleFunc("/highlights", handler.Highlights(st)).Methods(http.MethodGet)
	publicRouter.HandleFunc("/stories", handler.Stories(st)).Methods(http.MethodGet)

	bookingRouter := baseRouter.PathPrefix("/booking").Subrouter()
	bookingRouter.HandleFunc("/summary", handler.OrderSummary(bookingService)).Methods(http.MethodPost)
	bookingRouter.HandleFunc("/checkout", handler.Checkout(bookingService)).Methods(http.MethodPost)
	bookingRouter.HandleFunc("/payment/success", handler.PaymentSuccess(bookingService)).Methods(http.MethodPost)
	bookingRouter.HandleFunc("/payment/failure", handler.PaymentFailure()).Methods(http.MethodPost)
	bookingRouter.HandleFunc("/payment/dismiss", handler.PaymentDismissed()).Methods(http.MethodPost)

	historyRouter := baseRouter.PathPrefix("/me").Subrouter()
	historyRouter.Use(middleware.Authenticate(secret))
	historyRouter.HandleFunc("/bookings", handler.BookingHistory(bookingService)).Methods(http.MethodGet)

	reservationRouter := baseRouter.PathPrefix("/reservation").Subrouter()
	reservationRouter.HandleFunc("", handler.Reserve(reservationService)).Methods(http.MethodPost)
	reservationRouter.HandleFunc("/payment/success", handler.ReservationPaid()).Methods(http.MethodPost)
	reservationRouter.HandleFunc("/payment/failure", handler.ReservationPaymentFailed()).Methods(http.MethodPost)
	reservationRouter.HandleFunc("/payment/dismiss", handler.ReservationPaymentDismissed()).Methods(http.MethodPost)

	adminRouter := baseRouter.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.Authenticate(secret, model.RoleSuperAdmin, model.RoleOrganizer))
	adminRouter.HandleFunc("/upload", handler.UploadImages(uploader)).Methods(http.MethodPost)
	adminRouter.HandleFunc("/{kind}", handler.ListContent(st)).Methods(http.MethodGet)
	adminRouter.HandleFunc("/{kind}", handler.SaveContent(st)).Methods(http.MethodPost, http.MethodPut)
	adminRouter.HandleFunc("/{kind}/options", handler.FormOptions(st)).Methods(http.MethodGet)
	adminRouter.HandleFunc("/{kind}/{id}", handler.GetContent(st)).Methods(http.MethodGet)
	adminRouter.HandleFunc("/{kind}/{id}", handler.DeleteContent(st)).Methods(http.MethodDelete)

	return r
}
