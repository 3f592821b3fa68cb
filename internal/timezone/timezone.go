package timezone

import "time"

// Fallback quando a sede não tem timezone próprio; pode ser sobrescrito
// no bootstrap via SetDefault.
var defaultTZ = "America/Sao_Paulo"

func SetDefault(tz string) {
	if IsValid(tz) {
		defaultTZ = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(defaultTZ)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(defaultTZ))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
