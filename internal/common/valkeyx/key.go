package valkeyx

import (
	"fmt"
	"strings"
)

// BuildKey 는 prefix와 id를 결합하여 키를 생성한다.
// 형식: {prefix}:{id}
func BuildKey(prefix, id string) string {
	return fmt.Sprintf("%s:%s", prefix, strings.TrimSpace(id))
}

// BuildKey2 는 prefix와 두 개의 id를 결합하여 키를 생성한다.
// 형식: {prefix}:{id1}:{id2}
func BuildKey2(prefix, id1, id2 string) string {
	return fmt.Sprintf("%s:%s:%s", prefix, strings.TrimSpace(id1), strings.TrimSpace(id2))
}
