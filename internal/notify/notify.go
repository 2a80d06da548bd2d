package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func FormatCheckIn(todayCount int) (string, string) {
	title := "Mood check-in"
	if todayCount == 0 {
		return title, "How are you feeling? You haven't logged anything today."
	}
	msg := fmt.Sprintf("You've logged %d entries today. Anything to add before the day ends?", todayCount)
	return title, msg
}
