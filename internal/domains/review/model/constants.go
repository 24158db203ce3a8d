package model

// Content limits
const (
	MinTitleLength   = 2
	MaxTitleLength   = 255
	MinContentLength = 10
	MaxContentLength = 5000
)
