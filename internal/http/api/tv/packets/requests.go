package packets

type PairRequest struct {
	DeviceID string `json:"deviceId" binding:"required"`
}
