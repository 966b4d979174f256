package model

import "errors"

// Validation messages
const (
	MsgTitleRequired      = "Post must have a title."
	MsgTitleClickbait     = "Title must contain clickbait keywords."
	MsgContentRequired    = "Post must have content."
	MsgContentTooShort    = "Content must be at least 250 characters."
	MsgSummaryTooLong     = "Summary must be 250 characters or fewer."
	MsgCategoryNotAllowed = "Category must be Fiction or Non-Fiction."
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrSchemaNotReady = errors.New("posts table does not exist - run migrations first")
)
