package model

type InspectionResponse struct {
	Id       string       `json:"id"`
	Overview FileOverview `json:"overview"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
