// internal/adapters/out/firestore/helper_repository_fs.go
package firestore

import (
	"fmt"
	"strconv"
	"strings"
)

func asString(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

func asFloat(v any) float64 {
	if v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		tt := strings.TrimSpace(t)
		if tt == "" {
			return 0
		}
		n, err := strconv.ParseFloat(tt, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		// best-effort
		return 0
	}
}
