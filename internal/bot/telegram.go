package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"coinpulse/internal/domain"
	"coinpulse/internal/service"

	tele "gopkg.in/telebot.v3"
)

func StartTelegramBot(marketService *service.MarketService, sentimentService *service.SentimentService) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/price", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send(fmt.Sprintf("Usage: /price BTC\nDefaults: %s", strings.Join(domain.DefaultSymbols, ", ")))
		}
		symbol := strings.ToUpper(args[0])
		snapshot, err := marketService.GetMarketData(context.Background(), []string{symbol}, 1, true)
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching price for %s: %v", symbol, err))
		}
		quote, ok := snapshot.Data[symbol]
		if !ok {
			return c.Send(fmt.Sprintf("No data for symbol: %s", symbol))
		}
		msg := fmt.Sprintf(
			"%s\nPrice: $%.2f\n24h Change: %.2f%%\n24h Volume: $%.0f",
			symbol, quote.Price, quote.PercentChange24h, quote.Volume24h,
		)
		return c.Send(msg)
	})

	b.Handle("/sentiment", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send("Usage: /sentiment BTC")
		}
		symbol := strings.ToUpper(args[0])
		history, err := sentimentService.History(context.Background(), symbol, 1)
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching sentiment for %s: %v", symbol, err))
		}
		if len(history) == 0 {
			return c.Send(fmt.Sprintf("No sentiment recorded for %s yet", symbol))
		}
		latest := history[0]
		msg := fmt.Sprintf(
			"%s sentiment\nLatest: %s (%.2f)\nRecords today: %d",
			symbol, latest.Label, latest.Score, len(history),
		)
		return c.Send(msg)
	})

	log.Println("Telegram bot started")
	go b.Start()
}
