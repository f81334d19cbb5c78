package pkg

import "time"

// DateLayout is the fixed-width timestamp format persisted in date columns.
// Lexicographic order on these strings matches chronological order, which
// the listing queries rely on.
const DateLayout = "2006-01-02 15:04:05"

func Timestamp() string {
	return time.Now().Format(DateLayout)
}
