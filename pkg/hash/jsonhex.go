package hash

import (
	"fmt"
	"strings"
)

// unquoteJSONString strips the surrounding double quotes a JSON string
// token carries; both hash types are small enough that pulling in
// encoding/json just for this one operation is not worth it.
func unquoteJSONString(data []byte, out *string) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("expected quoted JSON string, got %q", data)
	}
	*out = string(data[1 : len(data)-1])
	return nil
}

func trimHexPrefix(s string) string {
	return strings.TrimPrefix(s, "0x")
}
