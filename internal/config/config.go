package config

import (
	"os"
	"strings"
)

// defaultCreditCards is the roster used when CREDITCARDS is unset.
var defaultCreditCards = []string{
	"Coral GPay CC",
	"MMT Mastercard",
	"Coral Paytm CC",
	"SBI Elite VISA 8359",
}

type Config struct {
	ProjectID   string
	Region      string
	LogLevel    string
	VertexModel string
	CreditCards []string
}

func New() *Config {
	return &Config{
		ProjectID:   os.Getenv("PROJECTID"),
		Region:      os.Getenv("REGION"),
		LogLevel:    os.Getenv("LOGLEVEL"),
		VertexModel: os.Getenv("VERTEXMODEL"),
		CreditCards: getCreditCards(os.Getenv("CREDITCARDS")),
	}
}

// getCreditCards parses the comma-separated card roster, falling back to the
// default set when the variable is empty.
func getCreditCards(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultCreditCards
	}
	var cards []string
	for _, part := range strings.Split(raw, ",") {
		if card := strings.TrimSpace(part); card != "" {
			cards = append(cards, card)
		}
	}
	if len(cards) == 0 {
		return defaultCreditCards
	}
	return cards
}
