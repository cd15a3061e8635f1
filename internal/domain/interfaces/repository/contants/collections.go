package repocontants

// Backend (Mongo) collection names.
const (
	PRODUCTS_COLLECTION       = "products"
	CHAT_RESPONSES_COLLECTION = "chatresponses"
)

// Local store collection names. Each logical resource owns its own key so
// whole-collection overwrites can never clobber a sibling resource.
const (
	LOCAL_USERS_COLLECTION          = "users"
	LOCAL_PRODUCTS_COLLECTION       = "products"
	LOCAL_CHAT_RESPONSES_COLLECTION = "chat_responses"
	LOCAL_MESSAGES_COLLECTION       = "messages"
)
