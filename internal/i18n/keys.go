// internal/i18n/keys.go
package i18n

// Translation keys shared between handlers and middleware.
const (
	KeyAuthRequired        = "auth.required"
	KeyAuthInvalidToken    = "auth.invalid_token"
	KeyAuthTokenExpired    = "auth.token_expired"
	KeyAuthLoginSuccess    = "auth.login_success"
	KeyAuthRegisterSuccess = "auth.register_success"
	KeyAuthLogoutSuccess   = "auth.logout_success"
	KeyAuthInvalidLogin    = "auth.invalid_login"

	KeyAdminAccessDenied = "admin.access_denied"

	KeyUserNotFound    = "user.not_found"
	KeyProductNotFound = "product.not_found"
	KeyReviewNotFound  = "review.not_found"
	KeyFilterNotFound  = "filter.not_found"
	KeyFilterExists    = "filter.exists"

	KeyProductCreated = "product.created"
	KeyProductUpdated = "product.updated"
	KeyProductDeleted = "product.deleted"
	KeyReviewCreated  = "review.created"
	KeyReviewDeleted  = "review.deleted"
	KeyFilterCreated  = "filter.created"
	KeyFilterDeleted  = "filter.deleted"

	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"
)
