package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/marcelosanto/telegram-food-boot/bot"
	"github.com/marcelosanto/telegram-food-boot/bot/apiclient"
	"github.com/marcelosanto/telegram-food-boot/config"
	"github.com/marcelosanto/telegram-food-boot/services"
)

func main() {
	config.LoadEnv()

	foods, err := services.LoadFoodTable(config.Cfg.Food.TablePath)
	if err != nil {
		log.Fatalf("loading food table: %v", err)
	}
	log.WithField("foods", foods.Len()).Info("food table loaded")

	backend := apiclient.New(config.Cfg.Bot.APIBaseURL)
	engine := bot.NewEngine(backend, foods)

	r := bot.WebhookRouter(engine)
	log.WithField("port", config.Cfg.Bot.WebhookPort).Info("bot webhook listening")
	if err := r.Run(fmt.Sprintf(":%d", config.Cfg.Bot.WebhookPort)); err != nil {
		log.Fatalf("webhook server stopped: %v", err)
	}
}
