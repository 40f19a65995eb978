package metrics

import "time"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

func since(started time.Time) float64 {
	return time.Since(started).Seconds()
}
