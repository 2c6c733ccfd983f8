package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/anjiri1684/course_enrollment/configs"
	"github.com/anjiri1684/course_enrollment/database"
	"github.com/anjiri1684/course_enrollment/jobs"
	"github.com/anjiri1684/course_enrollment/notifications"
	"github.com/anjiri1684/course_enrollment/routes"
	"github.com/anjiri1684/course_enrollment/services"
	"github.com/anjiri1684/course_enrollment/websocket"
	"github.com/robfig/cron/v3"
)

func main() {
	settings := config.Load()

	database.ConnectDB(settings.DatabaseURL, settings.DBLogLevel)
	database.MustMigrate()
	notifications.InitEmailService(settings.BrevoAPIKey, settings.EmailSender, settings.EmailSenderName)
	services.InitTranscriptStorage(settings.CloudinaryURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go websocket.Events.Run(ctx)

	c := cron.New()
	if _, err := c.AddFunc(settings.GradeAuditSchedule, jobs.RunGradeAudit); err != nil {
		log.Fatalf("🔥 Invalid GRADE_AUDIT_SCHEDULE %q: %v", settings.GradeAuditSchedule, err)
	}
	c.Start()
	log.Println("✅ Cron job for grade audit scheduled successfully.")

	app := routes.NewApp(routes.AppConfig{
		CORSOrigins: settings.CORSOrigins,
		TimeZone:    settings.TimeZone,
		AccessLog:   true,
	})

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		<-c.Stop().Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("🔥 Server shutdown failed: %v", err)
		}
	}()

	log.Printf("✅ Server is running on port %s", settings.Port)
	if err := app.Listen(":" + settings.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
