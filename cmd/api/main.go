package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/marcelosanto/telegram-food-boot/config"
	"github.com/marcelosanto/telegram-food-boot/controllers"
	"github.com/marcelosanto/telegram-food-boot/routes"
	"github.com/marcelosanto/telegram-food-boot/services"
)

// logOutbox stands in for the chat delivery channel: reminders due while no
// transport is attached are only logged.
type logOutbox struct{}

func (logOutbox) Send(userID uint, text string) error {
	log.WithField("user_id", userID).Info("reminder due: ", text)
	return nil
}

func main() {
	config.LoadEnv()
	config.RequireJWTSecret()
	config.InitDB()

	foods, err := services.LoadFoodTable(config.Cfg.Food.TablePath)
	if err != nil {
		log.Fatalf("loading food table: %v", err)
	}
	log.WithField("foods", foods.Len()).Info("food table loaded")

	notifier := services.NewNotifierService(logOutbox{})
	if err := notifier.LoadAll(); err != nil {
		log.Fatalf("re-arming reminders: %v", err)
	}
	defer notifier.Stop()

	controllers.Init(foods, notifier)

	r := routes.SetupRouter()
	if err := r.Run(fmt.Sprintf(":%d", config.Cfg.Server.Port)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
