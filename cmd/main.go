package main

import (
	"context"
	"os"
	"time"

	"github.com/HarshCode115/AapdaRakshak/config"
	"github.com/HarshCode115/AapdaRakshak/controllers"
	"github.com/HarshCode115/AapdaRakshak/routes"
	"github.com/HarshCode115/AapdaRakshak/services"
	"github.com/HarshCode115/AapdaRakshak/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	config.InitDB(log)
	utils.InitS3(log)

	mailer, err := utils.NewSESMailer()
	if err != nil {
		log.WithError(err).Warn("SES unavailable, alert emails disabled")
	}
	smsSender, err := services.NewSNSSMSSender(log)
	if err != nil {
		log.WithError(err).Warn("SNS unavailable, alert SMS disabled")
	}

	hub := services.NewRealtimeHub()
	geocoder := services.NewAPINinjasGeocoder()

	var email services.EmailSender
	if mailer != nil {
		email = mailer
	}
	var sms services.SMSSender
	if smsSender != nil {
		sms = smsSender
	}

	fanout := services.NewFanoutService(config.DB, email, sms, hub, log)
	alerts := services.NewAlertService(config.DB, geocoder, fanout, log)
	inbox := services.NewNotificationService(config.DB, hub, log)
	volunteers := services.NewVolunteerService(config.DB, utils.UploadBase64DocumentToS3, inbox, log)
	payments := services.NewPaymentService(config.DB, services.NewRazorpayOrders(), os.Getenv("RAZORPAY_KEY_SECRET"), log)
	earthquakes := services.NewEarthquakeService()

	// Expiry sweep runs for the life of the process.
	alerts.StartSweeper(context.Background(), time.Minute)

	r := routes.SetupRouter(routes.Controllers{
		AdminAlerts:   controllers.NewAdminAlertController(alerts),
		UserAlerts:    controllers.NewUserAlertController(alerts),
		Notifications: controllers.NewNotificationController(inbox),
		Volunteers:    controllers.NewVolunteerController(volunteers),
		Payments:      controllers.NewPaymentController(payments),
		Disasters:     controllers.NewDisasterController(earthquakes),
		Weather:       controllers.NewWeatherController(),
		News:          controllers.NewNewsController(),
		Realtime:      controllers.NewRealtimeController(hub),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
