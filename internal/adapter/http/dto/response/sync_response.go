package response

type UploadResponse struct {
	Sent int `json:"sent"`
}
