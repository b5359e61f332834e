package models

// ParseRequest is one document handed to the parser.
type ParseRequest struct {
	Source string // file path or "-" for stdin; used for logging only
	HTML   string
}
