package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonbValue / jsonbScan back the driver.Valuer / sql.Scanner
// implementations of every embedded cricket document in this package.
func jsonbValue(v interface{}) (driver.Value, error) {
	return json.Marshal(v)
}

func jsonbScan(dst interface{}, value interface{}) error {
	if value == nil {
		return nil
	}

	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
