// Package notify sends discovery alerts over Telegram.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/skywatch/cosmoscan/models"
)

// Notifier posts alert messages to a fixed chat.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

// New creates a Notifier. Fails if the token is rejected by Telegram.
func New(token string, chatID int64, logger zerolog.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("notify: telegram auth: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID, logger: logger}, nil
}

// AlertPlanet announces a high-confidence transit candidate.
func (n *Notifier) AlertPlanet(object string, planet models.PlanetCandidate) error {
	text := fmt.Sprintf(
		"New transit candidate on %s\nPeriod: %.2f days\nDepth: %.3f%%\nConfidence: %.1f%%",
		object, planet.PeriodDays, planet.TransitDepth*100, planet.Confidence,
	)
	return n.send(text)
}

// AlertTransient announces a transient event.
func (n *Notifier) AlertTransient(object string, event models.TransientEvent) error {
	text := fmt.Sprintf(
		"Transient on %s\nType: %s\nAmplitude: %.2f mag\nDuration: %.2f days",
		object, event.Type, event.Amplitude, event.DurationDays,
	)
	return n.send(text)
}

// AlertArtificialSignal announces a signal that scored as possibly
// artificial.
func (n *Notifier) AlertArtificialSignal(object string, score models.ArtificialityScore) error {
	text := fmt.Sprintf(
		"Signal alert on %s\nArtificiality score: %d/100\n%s",
		object, score.Score, score.Classification,
	)
	return n.send(text)
}

func (n *Notifier) send(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error().Err(err).Msg("telegram send failed")
		return err
	}
	return nil
}
