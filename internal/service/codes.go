package service

import (
	"fmt"
	"math/rand"
	"time"
)

// nuevoCodigo builds an 8-char record code: prefix, the last five digits
// of the unix-milli clock, then a 3-digit random salt, trimmed to the
// varchar(8) column width. Long prefixes (TKT, OPR) eat into the salt.
func nuevoCodigo(prefix string) string {
	suffix := fmt.Sprintf("%05d", time.Now().UnixMilli()%100000)
	salt := rand.Intn(900) + 100
	code := fmt.Sprintf("%s%s%d", prefix, suffix, salt)
	if len(code) > 8 {
		code = code[:8]
	}
	return code
}
