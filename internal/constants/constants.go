package constants

const (
	DefaultPage    = 0
	DefaultPerPage = 5

	MaxTitleLength = 255

	TaskDeletedMessage = "Task deleted successfully"
	LoggedOutMessage   = "Logged out successfully"

	TokenType = "Bearer"
)
