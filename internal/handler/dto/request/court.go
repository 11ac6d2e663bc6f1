package request

type UpdateCourtStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active maintenance inactive deleted"`
}
