package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage = 1

	// HabitPageSize is the fixed page size for habit listings.
	// Clients cannot override it.
	HabitPageSize = 5

	// PlacePageSize is the default page size for place listings.
	PlacePageSize = 20

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers              = "users"
	TablePlaces             = "places"
	TableHabits             = "habits"
	TableTelegramProfiles   = "telegram_profiles"
	TableTelegramLinkTokens = "telegram_link_tokens"
)
