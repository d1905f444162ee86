package http

const (
	StatusOK       = 200
	StatusCreated  = 201
	StatusNotFound = 404
)

var (
	unknownStatusCode = "Unknown Status Code"

	statusMessages = map[int]string{
		StatusOK:       "OK",
		StatusCreated:  "Created",
		StatusNotFound: "Not Found",
	}
)

// StatusText returns the reason phrase for the given status code.
func StatusText(status int) string {
	if message, found := statusMessages[status]; found {
		return message
	}
	return unknownStatusCode
}
