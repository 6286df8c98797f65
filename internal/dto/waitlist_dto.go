package dto

type SubscribeWaitlistRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SubscribeWaitlistResponse struct {
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
}
