package logger

// Functions unrelated to Logger but used for formatting values for logging.
import (
	"time"
)

// RoundDuration removes excessive precission for printing.
func RoundDuration(d, to time.Duration) string {
	d = d - (d % to)
	return d.String()
}
