package ports

import "time"

// Clock supplies the current moment. Everything that decides whether a date
// lies in the past reads time through a Clock so tests can freeze it.
type Clock interface {
	Now() time.Time
}
