// Package errors: 랭킹 파이프라인 전체에서 공용으로 사용되는 에러 타입들을 정의한다.
// 스테이지 로컬 에러 격리 정책(스킵 후 로그)에 필요한 분류를 제공한다.
package errors

import (
	"errors"
	"fmt"
)

// ConfigMissingError: 활성 티어 기준이 없는 등 설정이 누락된 경우.
// 하드코딩 기본값으로 폴백하므로 치명적 에러가 아니다.
type ConfigMissingError struct {
	What string
}

func (e ConfigMissingError) Error() string {
	return fmt.Sprintf("config missing: %s (falling back to defaults)", e.What)
}

// UpstreamQueryError: 실적 피드 또는 이전 스냅샷 조회 실패.
// 해당 기간의 처리를 중단하고 다음 기간으로 진행한다.
type UpstreamQueryError struct {
	Operation string
	Err       error
}

func (e UpstreamQueryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upstream query error operation=%s", e.Operation)
	}
	return fmt.Sprintf("upstream query error operation=%s: %v", e.Operation, e.Err)
}

func (e UpstreamQueryError) Unwrap() error { return e.Err }

// PersistenceError: 개별 upsert 실패 (제약 위반, 일시적 I/O 등).
// 해당 셀러만 스킵하고 배치는 계속 진행한다.
type PersistenceError struct {
	SellerID  string
	Operation string
	Err       error
}

func (e PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("persistence error operation=%s seller=%s", e.Operation, e.SellerID)
	}
	return fmt.Sprintf("persistence error operation=%s seller=%s: %v", e.Operation, e.SellerID, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

// MalformedRecordError: 식별자 누락 등 구조적으로 깨진 실적 레코드.
// 해당 레코드만 버리고 집계는 계속 진행한다. (수치 결측은 0 보정으로 흡수)
type MalformedRecordError struct {
	Reason string
}

func (e MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: %s", e.Reason)
}

// RedisError: Valkey 캐시 작업을 수행하는 도중 발생한 에러
type RedisError struct {
	Operation string
	Err       error
}

func (e RedisError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("redis error operation=%s", e.Operation)
	}
	return fmt.Sprintf("redis error operation=%s: %v", e.Operation, e.Err)
}

func (e RedisError) Unwrap() error { return e.Err }

// IsConfigMissing: 에러가 설정 누락 분류인지 확인한다.
func IsConfigMissing(err error) bool {
	var target ConfigMissingError
	return errors.As(err, &target)
}

// IsUpstreamQuery: 에러가 업스트림 조회 실패 분류인지 확인한다.
func IsUpstreamQuery(err error) bool {
	var target UpstreamQueryError
	return errors.As(err, &target)
}

// IsPersistence: 에러가 영속화 실패 분류인지 확인한다.
func IsPersistence(err error) bool {
	var target PersistenceError
	return errors.As(err, &target)
}
