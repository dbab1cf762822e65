package dto

type ToggleLikeRequest struct {
	Fingerprint string `json:"fingerprint"`
}
