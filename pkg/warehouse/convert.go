package warehouse

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// AsString formats a value returned by a driver.
func AsString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// AsInt64 converts a count returned by a driver. Drivers disagree on the type
// used for COUNT(*): SQLite and Postgres return int64, ClickHouse uint64, DuckDB
// may return *big.Int and Snowflake returns the digits as a string.
func AsInt64(v any) (int64, error) {
	switch val := v.(type) {
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case uint:
		return uint64ToInt64(uint64(val))
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		return uint64ToInt64(val)
	case float32:
		return int64(val), nil
	case float64:
		return int64(val), nil
	case *big.Int:
		if val == nil || !val.IsInt64() {
			return 0, errors.Errorf("count out of range: %v", val)
		}
		return val.Int64(), nil
	case string:
		return parseCount(val)
	case []byte:
		return parseCount(string(val))
	case nil:
		return 0, errors.New("count is NULL")
	default:
		return parseCount(fmt.Sprint(val))
	}
}

func uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, errors.Errorf("count out of range: %d", v)
	}

	return int64(v), nil
}

func parseCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("invalid count: %q", s)
	}

	return int64(f), nil
}
