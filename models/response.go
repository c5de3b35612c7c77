package models

type TitleResponse struct {
	Title string `json:"title"`
}

type ResultResponse struct {
	Result string `json:"result"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
