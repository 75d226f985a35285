package errors

var (
	// Chat
	ErrEmptyMessage         = InvalidArg("message body cannot be empty")
	ErrSelfConversation     = InvalidArg("cannot open a conversation with yourself")
	ErrConversationNotFound = NotFound("conversation not found")
	ErrMessageNotFound      = NotFound("message not found")
	ErrNotParticipant       = Forbidden("you do not have access to this conversation")
	ErrNotMessageSender     = Forbidden("only your own messages can be deleted for everyone")
	ErrNotFriends           = Forbidden("you can only chat with your friends")
	ErrInvalidDeleteType    = InvalidArg("deleteType must be 'for-me' or 'for-everyone'")

	// User directory
	ErrUserNotFound  = NotFound("user not found")
	ErrUsernameTaken = AlreadyExists("username is already taken")
	ErrEmptyUsername = InvalidArg("username cannot be empty")

	// Friendship workflow
	ErrSelfFriendRequest   = InvalidArg("cannot send a friend request to yourself")
	ErrAlreadyFriends      = AlreadyExists("you are already friends")
	ErrRequestPending      = AlreadyExists("a friend request is already pending")
	ErrRequestNotFound     = NotFound("friend request not found")
	ErrNotRequestRecipient = Forbidden("only the recipient can answer a friend request")
	ErrFriendshipMissing   = NotFound("friendship not found")
)

func ErrStorage(cause error) error {
	return Wrap(CodeInternal, "internal server error", cause)
}
