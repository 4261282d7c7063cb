package model

// Response is the single outward shape of this API: status 0 for success,
// 1 for any failure, with an optional payload on success paths.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

type TokenPayload struct {
	Token string `json:"token"`
}
