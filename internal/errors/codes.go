package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 이메일/비밀번호
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // 토큰 만료
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // 잘못된 토큰

	// ==================== 인가/권한 (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN" // 접근 권한 없음
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY" // 관리자만 가능

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationInvalidPeriod = "VALIDATION_INVALID_PERIOD" // 잘못된 기간 형식 (YYMM)

	// ==================== 대시보드 (DASHBOARD_) ====================
	DashboardUnavailable = "DASHBOARD_UNAVAILABLE" // 기간 데이터 없음 (폴백 포함 실패)
	DashboardExportFailed = "DASHBOARD_EXPORT_FAILED" // 엑셀 내보내기 실패

	// ==================== 코멘터리 (COMMENTARY_) ====================
	CommentaryNotFound   = "COMMENTARY_NOT_FOUND"   // 코멘터리 없음
	CommentarySaveFailed = "COMMENTARY_SAVE_FAILED" // 저장 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"   // 외부 소스 오류
)
