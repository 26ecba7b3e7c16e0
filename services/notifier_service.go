package services

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/marcelosanto/telegram-food-boot/models"
	"github.com/marcelosanto/telegram-food-boot/utils"
)

// Outbox delivers a reminder prompt to a user. The chat transport behind it
// is a collaborator of this service, not part of it.
type Outbox interface {
	Send(userID uint, text string) error
}

// NotifierService re-arms persisted reminders as daily in-process timers.
// Upserting a reminder replaces its timer; there is at most one timer per
// (user, reminder type).
type NotifierService struct {
	mu     sync.Mutex
	outbox Outbox
	timers map[string]*time.Timer
	now    func() time.Time
}

func NewNotifierService(outbox Outbox) *NotifierService {
	return &NotifierService{
		outbox: outbox,
		timers: make(map[string]*time.Timer),
		now:    time.Now,
	}
}

// LoadAll arms a timer for every persisted reminder. Called once at startup.
func (n *NotifierService) LoadAll() error {
	reminders, err := AllReminders()
	if err != nil {
		return err
	}
	for _, r := range reminders {
		n.Schedule(r.UserID, r.ReminderType, r.TimeOfDay)
	}
	log.WithField("count", len(reminders)).Info("reminders re-armed")
	return nil
}

// Schedule arms (or replaces) the daily timer for one reminder slot.
func (n *NotifierService) Schedule(userID uint, reminderType, timeOfDay string) {
	normalized, err := utils.ParseClockTime(timeOfDay)
	if err != nil {
		log.WithFields(log.Fields{"user_id": userID, "time": timeOfDay}).
			Warn("refusing to schedule malformed reminder time")
		return
	}

	key := timerKey(userID, reminderType)
	delay := n.untilNext(normalized)

	n.mu.Lock()
	defer n.mu.Unlock()
	if old, ok := n.timers[key]; ok {
		old.Stop()
	}
	n.timers[key] = time.AfterFunc(delay, func() {
		n.fire(userID, reminderType, normalized)
	})
}

// Cancel drops the timer for one slot, if armed.
func (n *NotifierService) Cancel(userID uint, reminderType string) {
	key := timerKey(userID, reminderType)
	n.mu.Lock()
	defer n.mu.Unlock()
	if t, ok := n.timers[key]; ok {
		t.Stop()
		delete(n.timers, key)
	}
}

// Stop cancels every armed timer.
func (n *NotifierService) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for key, t := range n.timers {
		t.Stop()
		delete(n.timers, key)
	}
}

func (n *NotifierService) fire(userID uint, reminderType, timeOfDay string) {
	text := "🍽️ Hora de registrar sua refeição! Use /start para começar."
	if reminderType == models.ReminderWater {
		text = "💧 Hora de se hidratar! Registre sua água com /start."
	}
	if err := n.outbox.Send(userID, text); err != nil {
		log.WithFields(log.Fields{"user_id": userID, "type": reminderType}).
			WithError(err).Error("reminder delivery failed")
	}

	// re-arm for the next day
	n.Schedule(userID, reminderType, timeOfDay)
}

func (n *NotifierService) untilNext(timeOfDay string) time.Duration {
	var hours, minutes int
	fmt.Sscanf(timeOfDay, "%d:%d", &hours, &minutes)

	now := n.now()
	next := time.Date(now.Year(), now.Month(), now.Day(), hours, minutes, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

func timerKey(userID uint, reminderType string) string {
	return fmt.Sprintf("%d:%s", userID, reminderType)
}
