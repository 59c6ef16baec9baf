package main

import "fmt"

type sampleTicket struct {
	Channel string
	Message string
}

// classifierInput folds the channel into the text sent to the pipeline so
// the model sees where the ticket came from.
func (t sampleTicket) classifierInput() string {
	return fmt.Sprintf("Channel: %s\nMessage: %s", t.Channel, t.Message)
}

var sampleTickets = []sampleTicket{
	{
		Channel: "email",
		Message: "Our entire team cannot access the platform since this morning. We have a client presentation in 2 hours. Please help ASAP!",
	},
	{
		Channel: "whatsapp",
		Message: "Hi, how do I export my monthly report to PDF?",
	},
	{
		Channel: "email",
		Message: "We have been charged twice for the Pro plan this month. Invoice #INV-2024-1847. Please refund immediately.",
	},
	{
		Channel: "whatsapp",
		Message: "Hola, me gustaria saber si tienen soporte en espanol y si el plan basico incluye integracion con WhatsApp.",
	},
	{
		Channel: "email",
		Message: "The new dashboard redesign is fantastic! Much easier to navigate. One suggestion: add dark mode support.",
	},
}
