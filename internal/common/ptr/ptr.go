// Package ptr: 널러블 컬럼/DTO 필드를 채울 때 쓰는 포인터 헬퍼.
package ptr

// Float64 는 float64 포인터를 만든다.
func Float64(v float64) *float64 { return &v }

// Int: int 포인터를 만든다.
func Int(v int) *int { return &v }
