// Package errors provides typed error handling for notesmcp operations.
//
// Every error carries a stable code that is returned verbatim in MCP tool
// error payloads and mapped to CLI exit codes.
//
// Example usage:
//
//	// Creating errors
//	err := errors.NoteNotFound("5cf0...")
//	err := errors.TitleRequired()
//
//	// Wrapping errors
//	err := errors.StoreFailed(ioErr)
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeNoteNotFound) {
//	    // handle missing note
//	}
//
//	// Extracting codes
//	code := errors.Code(err)
//	if code == errors.CodeTitleRequired {
//	    // handle blank title
//	}
//
//	// Stdlib compatibility
//	var notesErr *errors.Error
//	if errors.As(err, &notesErr) {
//	    fmt.Println(notesErr.Code, notesErr.Message)
//	}
package errors
