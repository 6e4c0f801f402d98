package app

import "time"

// quotes rotates daily in the header when the quote setting is on.
var quotes = []string{
	"Focus on being productive instead of busy.",
	"Your future is created by what you do today, not tomorrow.",
	"Done is better than perfect.",
	"The secret of getting ahead is getting started.",
	"Discipline is choosing between what you want now and what you want most.",
	"Small progress is still progress.",
	"Don't stop until you're proud.",
	"Action is the foundational key to all success.",
	"The way to get started is to quit talking and begin doing.",
	"It always seems impossible until it's done.",
	"Quality is not an act, it is a habit.",
	"The only way to do great work is to love what you do.",
	"Success is the sum of small efforts, repeated day in and day out.",
	"Your mind is for having ideas, not holding them.",
	"Focus on the process, not the outcome.",
	"Efficiency is doing things right; effectiveness is doing the right things.",
	"The best way to predict the future is to create it.",
	"Amateurs sit and wait for inspiration, the rest of us just get up and go to work.",
	"You don't have to see the whole staircase, just take the first step.",
	"Productivity is never an accident.",
}

// quoteOfTheDay picks the rotating quote for now's weekday.
func quoteOfTheDay(now time.Time) string {
	return quotes[int(now.Weekday())%len(quotes)]
}
