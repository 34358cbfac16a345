package utils

import (
	"strconv"
)

// Transfer jwt的payload在解析后数值会退化成float64 这里统一转换回int64
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	if res, err := strconv.ParseInt(v, 10, 64); err != nil {
		return -1, err
	} else {
		return res, nil
	}
}
