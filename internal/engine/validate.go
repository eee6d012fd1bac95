package engine

import (
	"math"
	"time"

	"github.com/loupelabs/apilens/internal/models"
	"github.com/loupelabs/apilens/internal/utils"
)

// event is a validated, normalized access-log record. Only events that passed
// validation exist; response time is non-negative and the status code is an
// integer.
type event struct {
	Timestamp      time.Time
	Endpoint       string
	Method         string
	ResponseTimeMs float64
	StatusCode     int
	UserID         string
	RequestBytes   float64
	ResponseBytes  float64
}

// validate normalizes one raw record. It never fails the caller: records that
// are malformed in any way report ok=false and are dropped.
//
// Rules, in order: the timestamp must parse as an RFC 3339 instant;
// response_time_ms must be numeric and non-negative; status_code must be an
// integer. Absent endpoint, method, and user_id default to "/", "GET", and
// "anonymous"; absent sizes default to 0.
func validate(rec models.RawRecord) (event, bool) {
	if rec == nil {
		return event{}, false
	}

	raw, ok := stringField(rec, "timestamp")
	if !ok {
		return event{}, false
	}
	ts, err := utils.ParseInstant(raw)
	if err != nil {
		return event{}, false
	}

	responseTime, ok := numberField(rec, "response_time_ms")
	if !ok || responseTime < 0 {
		return event{}, false
	}

	status, ok := integerField(rec, "status_code")
	if !ok {
		return event{}, false
	}

	ev := event{
		Timestamp:      ts,
		Endpoint:       stringOr(rec, "endpoint", "/"),
		Method:         stringOr(rec, "method", "GET"),
		ResponseTimeMs: responseTime,
		StatusCode:     status,
		UserID:         stringOr(rec, "user_id", "anonymous"),
	}
	ev.RequestBytes, _ = numberField(rec, "request_size_bytes")
	ev.ResponseBytes, _ = numberField(rec, "response_size_bytes")
	return ev, true
}

func stringField(rec models.RawRecord, key string) (string, bool) {
	s, ok := rec[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func stringOr(rec models.RawRecord, key, fallback string) string {
	if s, ok := stringField(rec, key); ok {
		return s
	}
	return fallback
}

// numberField accepts the numeric shapes a decoded JSON record can carry.
func numberField(rec models.RawRecord, key string) (float64, bool) {
	switch v := rec[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// integerField accepts integers and whole-valued floats; fractional values
// and floats too large to convert exactly are rejected.
func integerField(rec models.RawRecord, key string) (int, bool) {
	switch v := rec[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
			return int(v), true
		}
	}
	return 0, false
}
