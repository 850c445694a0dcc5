package session

// ErrorMarker prefixes every diagnostic entry produced from a failed request.
const ErrorMarker = "❌"

func diagnostic(err error) string {
	return ErrorMarker + " Error: " + err.Error()
}
