package security

// Well-known attribute keys. They double as the default header names the
// gateway uses when forwarding identity downstream.
const (
	// KeyUserID holds the numeric user id.
	KeyUserID = "user_id"

	// KeyUserName holds the login name.
	KeyUserName = "username"

	// KeyUserKey holds the session key issued at login.
	KeyUserKey = "user_key"

	// KeyPermission holds the comma separated permission string.
	KeyPermission = "role_permission"
)

// Empty is the sentinel stored in place of nil values.
const Empty = ""
