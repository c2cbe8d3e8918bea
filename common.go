package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/kiddy-universe/web-api/services/chat"
	"github.com/kiddy-universe/web-api/services/openai"
)

func configureResponder(f []cli.Flag) []cli.Flag {
	f = openai.RegisterFlags(f)
	return f
}

func makeResponder(c *cli.Context, cl *http.Client) chat.Responder {
	// Setting offline responder
	mock := chat.NewMock()

	// Setting OpenAI API
	openaiApi := openai.New(c, cl)
	if openaiApi == nil {
		log.Info("no openai api key provided, chat answers with offline templates only")
		return chat.NewFallback(nil, mock)
	}

	// Setting Fallback from AI to offline responder
	return chat.NewFallback(chat.NewAI(openaiApi), mock)
}
