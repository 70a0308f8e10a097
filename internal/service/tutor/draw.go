package tutor

import (
	"fmt"
	"time"
)

// Rand is the subset of math/rand/v2 the controller needs.
type Rand interface {
	IntN(n int) int
}

const (
	minReadingYear = 1700
	maxReadingYear = 2030
)

// letters a translation subject may start with
var letters = []rune("ABCDEFGHIJKLMNOPRSTUV")

// draw holds every random choice a command makes, taken once per invocation.
type draw struct {
	Words       []string
	Letter      string
	Voice       string
	NumberTopic string
	WritingType string
	Year        int
}

func (c *Controller) draw() draw {
	d := draw{
		Words:  c.words.Sample(c.rand, 3),
		Letter: string(letters[c.rand.IntN(len(letters))]),
		Year:   minReadingYear + c.rand.IntN(maxReadingYear-minReadingYear+1),
	}
	d.Voice = pick(c.rand, c.book.Voices)
	d.NumberTopic = pick(c.rand, c.book.NumberTopics)
	d.WritingType = pick(c.rand, c.book.WritingTypes)
	return d
}

func pick(r Rand, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[r.IntN(len(items))]
}

// readingDate formats today's day and month in the drawn year, e.g. "19 October 1850".
func readingDate(today time.Time, year int) string {
	return fmt.Sprintf("%02d %s %d", today.Day(), today.Month(), year)
}
