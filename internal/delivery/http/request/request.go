package request

type RegisterURLRequest struct {
	URL string `json:"url"`
}
