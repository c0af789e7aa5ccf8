package newsletter

type SubscribeRequest struct {
	Email  string `json:"email" validate:"required,shallow_email,max=254"`
	Source string `json:"source" validate:"omitempty,max=50"`
}
